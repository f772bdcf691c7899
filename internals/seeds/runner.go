package seeds

import (
	"gorm.io/gorm"

	programas "academico_backend/internals/seeds/programas"
)

// RunAllSeeds carga los datos de demostración. Cada seed es idempotente:
// corre sobre una base ya sembrada sin duplicar nada.
func RunAllSeeds(db *gorm.DB) {
	programas.SeedProgramaDemo(db)
}
