package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "academico_backend/internals/features/academico/cohortes/model"
)

// ReemplazarSecuencia borra la secuencia anterior y crea la nueva en una
// sola transacción: si algo falla a mitad de camino queda la original.
// El orden se reasigna 1..N según la posición recibida, ignorando cualquier
// orden que mande el cliente.
func ReemplazarSecuencia(db *gorm.DB, bloqueFechasID uuid.UUID, tipos []model.TipoSemana) ([]model.SemanaConfigModel, error) {
	nuevas := make([]model.SemanaConfigModel, 0, len(tipos))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("semana_config_bloque_fechas_id = ?", bloqueFechasID).
			Delete(&model.SemanaConfigModel{}).Error; err != nil {
			return err
		}
		for i, tipo := range tipos {
			semana := model.SemanaConfigModel{
				SemanaConfigBloqueFechasID: bloqueFechasID,
				SemanaConfigOrden:          i + 1,
				SemanaConfigTipo:           tipo,
			}
			if err := tx.Create(&semana).Error; err != nil {
				return err
			}
			nuevas = append(nuevas, semana)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nuevas, nil
}
