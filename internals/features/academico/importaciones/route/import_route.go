package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aservice "academico_backend/internals/features/academico/analiticas/service"
	"academico_backend/internals/features/academico/importaciones/controller"
	"academico_backend/internals/middlewares"
)

func ImportRoutes(router fiber.Router, db *gorm.DB, cache *aservice.Cache) {
	importaciones := controller.NewImportController(db, cache)

	g := router.Group("/importaciones")
	{
		g.Get("/", importaciones.List)

		// los uploads masivos tienen su propio límite, mucho más bajo
		g.Post("/inscripciones", middlewares.ImportRateLimiter(), importaciones.Inscripciones)
		g.Post("/asistencias", middlewares.ImportRateLimiter(), importaciones.Asistencias)
		g.Post("/notas", middlewares.ImportRateLimiter(), importaciones.Notas)
	}
}
