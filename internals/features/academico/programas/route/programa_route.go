package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/programas/controller"
)

func ProgramaRoutes(router fiber.Router, db *gorm.DB) {
	programas := controller.NewProgramaController(db)
	baterias := controller.NewBateriaController(db)
	bloques := controller.NewBloqueController(db)
	modulos := controller.NewModuloController(db)

	g := router.Group("/programas")
	{
		g.Get("/", programas.List)
		g.Post("/", programas.Create)
		g.Get("/:id", programas.GetByID)
		g.Put("/:id", programas.Update)
		g.Delete("/:id", programas.Delete)
	}

	router.Get("/estructura", programas.Estructura)

	b := router.Group("/baterias")
	{
		b.Get("/", baterias.List)
		b.Post("/", baterias.Create)
		b.Put("/:id", baterias.Update)
		b.Delete("/:id", baterias.Delete)
	}

	bl := router.Group("/bloques")
	{
		bl.Get("/", bloques.List)
		bl.Post("/", bloques.Create)
		bl.Get("/:id", bloques.GetByID)
		bl.Put("/:id", bloques.Update)
		bl.Delete("/:id", bloques.Delete)
		bl.Get("/:id/verificar-correlativas", bloques.VerificarCorrelativas)
	}

	m := router.Group("/modulos")
	{
		m.Get("/", modulos.List)
		m.Post("/", modulos.Create)
		m.Get("/:id", modulos.GetByID)
		m.Put("/:id", modulos.Update)
		m.Delete("/:id", modulos.Delete)
	}
}
