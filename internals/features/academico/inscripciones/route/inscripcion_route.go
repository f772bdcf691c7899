package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/inscripciones/controller"
)

func InscripcionRoutes(router fiber.Router, db *gorm.DB) {
	inscripciones := controller.NewInscripcionController(db)

	g := router.Group("/inscripciones")
	{
		g.Get("/", inscripciones.List)
		g.Post("/", inscripciones.Create)
		g.Get("/:id", inscripciones.GetByID)
		g.Put("/:id", inscripciones.Update)
		g.Delete("/:id", inscripciones.Delete)
	}
}
