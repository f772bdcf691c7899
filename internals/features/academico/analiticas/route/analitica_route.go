package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/features/academico/analiticas/controller"
	"academico_backend/internals/features/academico/analiticas/service"
)

func AnaliticaRoutes(router fiber.Router, db *gorm.DB, cache *service.Cache) {
	analiticas := controller.NewAnaliticaController(db, cache)

	g := router.Group("/analiticas")
	{
		g.Get("/inscripciones", analiticas.Inscripciones)
		g.Get("/asistencia", analiticas.Asistencia)
		g.Get("/notas", analiticas.Notas)
		g.Get("/desercion", analiticas.Desercion)
		g.Get("/graduacion", analiticas.Graduacion)
		g.Get("/dashboard", analiticas.Dashboard)
		g.Get("/kpis/inscriptos", analiticas.KpiInscriptos)
		g.Get("/kpis/asistencia-promedio", analiticas.KpiAsistenciaPromedio)
		g.Get("/kpis/aprobacion", analiticas.KpiAprobacion)
		g.Get("/kpis/equivalencias", analiticas.KpiEquivalencias)
		g.Get("/kpis/alertas", analiticas.Alertas)
	}
}
