package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/estudiantes/controller"
)

func EstudianteRoutes(router fiber.Router, db *gorm.DB) {
	h := controller.NewEstudianteController(db)

	g := router.Group("/estudiantes")
	{
		g.Get("/", h.List)
		g.Post("/", h.Create)
		g.Get("/:id", h.GetByID)
		g.Put("/:id", h.Update)
		g.Delete("/:id", h.Delete)
		g.Get("/:id/bloques-aprobados", h.BloquesAprobados)
	}
}
