package model

import (
	"time"

	"github.com/google/uuid"
)

// Las correlativas son una relación m2m aparte sobre el árbol
// programa→batería→bloque: un bloque puede exigir otros bloques aprobados.
type BloqueModel struct {
	BloqueID uuid.UUID `gorm:"column:bloque_id;type:uuid;default:gen_random_uuid();primaryKey"`

	BloqueBateriaID uuid.UUID `gorm:"column:bloque_bateria_id;type:uuid;not null;index"`
	BloqueNombre    string    `gorm:"column:bloque_nombre;not null"`
	BloqueOrden     int       `gorm:"column:bloque_orden;not null;default:0"`

	Correlativas []BloqueModel `gorm:"many2many:bloque_correlativas;foreignKey:BloqueID;joinForeignKey:bloque_id;References:BloqueID;joinReferences:correlativa_id"`

	BloqueCreatedAt time.Time `gorm:"column:bloque_created_at;type:timestamptz;not null;autoCreateTime"`
	BloqueUpdatedAt time.Time `gorm:"column:bloque_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (BloqueModel) TableName() string { return "bloques" }
