package model

import (
	"time"

	"github.com/google/uuid"
)

type BateriaModel struct {
	BateriaID uuid.UUID `gorm:"column:bateria_id;type:uuid;default:gen_random_uuid();primaryKey"`

	BateriaProgramaID uuid.UUID `gorm:"column:bateria_programa_id;type:uuid;not null;index"`
	BateriaNombre     string    `gorm:"column:bateria_nombre;not null"`
	BateriaOrden      int       `gorm:"column:bateria_orden;not null;default:0"`

	BateriaCreatedAt time.Time `gorm:"column:bateria_created_at;type:timestamptz;not null;autoCreateTime"`
	BateriaUpdatedAt time.Time `gorm:"column:bateria_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (BateriaModel) TableName() string { return "baterias" }
