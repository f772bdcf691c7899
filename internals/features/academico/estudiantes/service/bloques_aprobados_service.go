package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Un bloque se considera aprobado cuando el estudiante tiene al menos una
// nota aprobada sobre un examen final de ese bloque (FINAL_VIRTUAL,
// FINAL_SINC o EQUIVALENCIA). Misma regla que usa la analítica de graduación.

type BloqueAprobadoRow struct {
	BloqueID     uuid.UUID `gorm:"column:bloque_id" json:"bloque_id"`
	BloqueNombre string    `gorm:"column:bloque_nombre" json:"bloque_nombre"`
	BloqueOrden  int       `gorm:"column:bloque_orden" json:"bloque_orden"`
}

const bloquesAprobadosSQL = `
SELECT DISTINCT b.bloque_id, b.bloque_nombre, b.bloque_orden
FROM bloques b
JOIN examenes e ON e.examen_bloque_id = b.bloque_id
JOIN notas n    ON n.nota_examen_id = e.examen_id
WHERE n.nota_estudiante_id = ?
  AND n.nota_aprobado = TRUE
  AND e.examen_tipo IN ('FINAL_VIRTUAL','FINAL_SINC','EQUIVALENCIA')
ORDER BY b.bloque_orden`

// BloquesAprobados lista los bloques aprobados por el estudiante.
func BloquesAprobados(db *gorm.DB, estudianteID uuid.UUID) ([]BloqueAprobadoRow, error) {
	var rows []BloqueAprobadoRow
	if err := db.Raw(bloquesAprobadosSQL, estudianteID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// BloquesAprobadosSet devuelve el mismo resultado como set de ids,
// para chequeos de pertenencia (correlativas).
func BloquesAprobadosSet(db *gorm.DB, estudianteID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := BloquesAprobados(db, estudianteID)
	if err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(rows))
	for _, r := range rows {
		set[r.BloqueID] = true
	}
	return set, nil
}
