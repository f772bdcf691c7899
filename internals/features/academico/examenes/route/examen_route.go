package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/examenes/controller"
)

func ExamenRoutes(router fiber.Router, db *gorm.DB) {
	examenes := controller.NewExamenController(db)
	notas := controller.NewNotaController(db)

	e := router.Group("/examenes")
	{
		e.Get("/", examenes.List)
		e.Post("/", examenes.Create)
		e.Get("/:id", examenes.GetByID)
		e.Put("/:id", examenes.Update)
		e.Delete("/:id", examenes.Delete)
	}

	n := router.Group("/notas")
	{
		n.Get("/", notas.List)
		n.Post("/", notas.Create)
		n.Get("/:id", notas.GetByID)
		n.Put("/:id", notas.Update)
		n.Delete("/:id", notas.Delete)
	}
}
