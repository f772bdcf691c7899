package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgramaModel struct {
	ProgramaID uuid.UUID `gorm:"column:programa_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ProgramaCodigo string `gorm:"column:programa_codigo;uniqueIndex;not null"`
	ProgramaNombre string `gorm:"column:programa_nombre;not null"`
	ProgramaActivo bool   `gorm:"column:programa_activo;not null;default:true"`

	ProgramaCreatedAt time.Time `gorm:"column:programa_created_at;type:timestamptz;not null;autoCreateTime"`
	ProgramaUpdatedAt time.Time `gorm:"column:programa_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (ProgramaModel) TableName() string { return "programas" }
