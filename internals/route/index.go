package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academico_backend/internals/configs"
	analiticaRoute "academico_backend/internals/features/academico/analiticas/route"
	aservice "academico_backend/internals/features/academico/analiticas/service"
	asistenciaRoute "academico_backend/internals/features/academico/asistencias/route"
	cohorteRoute "academico_backend/internals/features/academico/cohortes/route"
	estudianteRoute "academico_backend/internals/features/academico/estudiantes/route"
	examenRoute "academico_backend/internals/features/academico/examenes/route"
	importRoute "academico_backend/internals/features/academico/importaciones/route"
	inscripcionRoute "academico_backend/internals/features/academico/inscripciones/route"
	programaRoute "academico_backend/internals/features/academico/programas/route"
	reporteRoute "academico_backend/internals/features/academico/reportes/route"
	"academico_backend/internals/middlewares/auth"
)

// SetupRoutes monta todos los endpoints bajo /api. Las lecturas son
// públicas; las escrituras requieren JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	RegisterBaseRoutes(app, db)

	api := app.Group("/api")
	api.Use(auth.WriteGuard(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	// cache compartido entre analíticas e importaciones: un import masivo
	// invalida los agregados
	cache := aservice.NewCache(configs.AnalyticsCacheTTL)

	estudianteRoute.EstudianteRoutes(api, db)
	programaRoute.ProgramaRoutes(api, db)
	cohorteRoute.CohorteRoutes(api, db)
	examenRoute.ExamenRoutes(api, db)
	asistenciaRoute.AsistenciaRoutes(api, db)
	inscripcionRoute.InscripcionRoutes(api, db)
	reporteRoute.ReporteRoutes(api, db)
	analiticaRoute.AnaliticaRoutes(api, db, cache)
	importRoute.ImportRoutes(api, db, cache)
}
