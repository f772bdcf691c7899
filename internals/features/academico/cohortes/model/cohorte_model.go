package model

import (
	"time"

	"github.com/google/uuid"

	programaModel "academico_backend/internals/features/academico/programas/model"
)

type CohorteModel struct {
	CohorteID uuid.UUID `gorm:"column:cohorte_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CohorteNombre         string    `gorm:"column:cohorte_nombre;not null"`
	CohorteProgramaID     uuid.UUID `gorm:"column:cohorte_programa_id;type:uuid;not null;index"`
	CohorteBloqueFechasID uuid.UUID `gorm:"column:cohorte_bloque_fechas_id;type:uuid;not null"`

	Programa     *programaModel.ProgramaModel `gorm:"foreignKey:CohorteProgramaID;references:ProgramaID"`
	BloqueFechas *BloqueDeFechasModel         `gorm:"foreignKey:CohorteBloqueFechasID;references:BloqueFechasID"`

	CohorteCreatedAt time.Time `gorm:"column:cohorte_created_at;type:timestamptz;not null;autoCreateTime"`
	CohorteUpdatedAt time.Time `gorm:"column:cohorte_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (CohorteModel) TableName() string { return "cohortes" }
