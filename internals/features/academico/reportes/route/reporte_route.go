package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/reportes/controller"
)

func ReporteRoutes(router fiber.Router, db *gorm.DB) {
	historial := controller.NewHistorialController(db)

	g := router.Group("/reportes")
	{
		g.Get("/historial", historial.Historial)
	}
}
