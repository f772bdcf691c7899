package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/asistencias/controller"
)

func AsistenciaRoutes(router fiber.Router, db *gorm.DB) {
	asistencias := controller.NewAsistenciaController(db)

	g := router.Group("/asistencias")
	{
		g.Get("/", asistencias.List)
		g.Post("/", asistencias.Create)
		g.Get("/:id", asistencias.GetByID)
		g.Put("/:id", asistencias.Update)
		g.Delete("/:id", asistencias.Delete)
	}
}
