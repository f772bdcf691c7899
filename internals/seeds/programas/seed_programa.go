package programas

import (
	"log"
	"time"

	"gorm.io/gorm"

	cmodel "academico_backend/internals/features/academico/cohortes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
)

// SeedProgramaDemo crea un programa mínimo con su cohorte y calendario,
// suficiente para recorrer la API sin cargar datos a mano. Usa el código
// del programa como clave de idempotencia.
func SeedProgramaDemo(db *gorm.DB) {
	var programa pmodel.ProgramaModel
	err := db.Where("programa_codigo = ?", "DEMO").
		Attrs(pmodel.ProgramaModel{
			ProgramaCodigo: "DEMO",
			ProgramaNombre: "Programa de Demostración",
			ProgramaActivo: true,
		}).
		FirstOrCreate(&programa).Error
	if err != nil {
		log.Printf("❌ seed programa demo: %v", err)
		return
	}

	var bateria pmodel.BateriaModel
	if err := db.Where("bateria_programa_id = ? AND bateria_orden = 1", programa.ProgramaID).
		Attrs(pmodel.BateriaModel{
			BateriaProgramaID: programa.ProgramaID,
			BateriaNombre:     "Primera Batería",
			BateriaOrden:      1,
		}).
		FirstOrCreate(&bateria).Error; err != nil {
		log.Printf("❌ seed batería demo: %v", err)
		return
	}

	var bloque pmodel.BloqueModel
	if err := db.Where("bloque_bateria_id = ? AND bloque_orden = 1", bateria.BateriaID).
		Attrs(pmodel.BloqueModel{
			BloqueBateriaID: bateria.BateriaID,
			BloqueNombre:    "Bloque Inicial",
			BloqueOrden:     1,
		}).
		FirstOrCreate(&bloque).Error; err != nil {
		log.Printf("❌ seed bloque demo: %v", err)
		return
	}

	var modulo pmodel.ModuloModel
	if err := db.Where("modulo_bloque_id = ? AND modulo_orden = 1", bloque.BloqueID).
		Attrs(pmodel.ModuloModel{
			ModuloBloqueID: bloque.BloqueID,
			ModuloNombre:   "Introducción",
			ModuloOrden:    1,
		}).
		FirstOrCreate(&modulo).Error; err != nil {
		log.Printf("❌ seed módulo demo: %v", err)
		return
	}

	var fechas cmodel.BloqueDeFechasModel
	if err := db.Where("bloque_fechas_nombre = ?", "Calendario Demo").
		Attrs(cmodel.BloqueDeFechasModel{
			BloqueFechasNombre:      "Calendario Demo",
			BloqueFechasFechaInicio: time.Date(time.Now().Year(), time.March, 1, 0, 0, 0, 0, time.UTC),
		}).
		FirstOrCreate(&fechas).Error; err != nil {
		log.Printf("❌ seed bloque de fechas demo: %v", err)
		return
	}

	var cohorte cmodel.CohorteModel
	if err := db.Where("cohorte_programa_id = ? AND cohorte_nombre = ?", programa.ProgramaID, "Cohorte Demo").
		Attrs(cmodel.CohorteModel{
			CohorteNombre:         "Cohorte Demo",
			CohorteProgramaID:     programa.ProgramaID,
			CohorteBloqueFechasID: fechas.BloqueFechasID,
		}).
		FirstOrCreate(&cohorte).Error; err != nil {
		log.Printf("❌ seed cohorte demo: %v", err)
		return
	}

	log.Println("✅ Datos de demostración listos")
}
