package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/cohortes/controller"
)

func CohorteRoutes(router fiber.Router, db *gorm.DB) {
	cohortes := controller.NewCohorteController(db)
	fechas := controller.NewBloqueDeFechasController(db)

	g := router.Group("/cohortes")
	{
		g.Get("/", cohortes.List)
		g.Post("/", cohortes.Create)
		g.Get("/:id", cohortes.GetByID)
		g.Put("/:id", cohortes.Update)
		g.Delete("/:id", cohortes.Delete)
	}

	f := router.Group("/bloques-de-fechas")
	{
		f.Get("/", fechas.List)
		f.Post("/", fechas.Create)
		f.Get("/:id", fechas.GetByID)
		f.Put("/:id", fechas.Update)
		f.Delete("/:id", fechas.Delete)
		f.Post("/:id/guardar-secuencia", fechas.GuardarSecuencia)
		f.Get("/:id/calendario", fechas.Calendario)
	}
}
