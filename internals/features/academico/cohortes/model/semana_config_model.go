package model

import (
	"time"

	"github.com/google/uuid"
)

type TipoSemana string

const (
	SemanaCursada  TipoSemana = "CURSADA"
	SemanaExamen   TipoSemana = "EXAMEN"
	SemanaReceso   TipoSemana = "RECESO"
	SemanaPractica TipoSemana = "PRACTICA"
)

type SemanaConfigModel struct {
	SemanaConfigID uuid.UUID `gorm:"column:semana_config_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SemanaConfigBloqueFechasID uuid.UUID  `gorm:"column:semana_config_bloque_fechas_id;type:uuid;not null;index"`
	SemanaConfigOrden          int        `gorm:"column:semana_config_orden;not null"`
	SemanaConfigTipo           TipoSemana `gorm:"column:semana_config_tipo;not null"`

	SemanaConfigCreatedAt time.Time `gorm:"column:semana_config_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (SemanaConfigModel) TableName() string { return "semanas_config" }
