package model

import (
	"time"

	"github.com/google/uuid"
)

// Plantilla de calendario: una fecha de inicio + la secuencia ordenada de
// tipos de semana. El calendario concreto se calcula, no se persiste.
type BloqueDeFechasModel struct {
	BloqueFechasID uuid.UUID `gorm:"column:bloque_fechas_id;type:uuid;default:gen_random_uuid();primaryKey"`

	BloqueFechasNombre      string    `gorm:"column:bloque_fechas_nombre;not null"`
	BloqueFechasFechaInicio time.Time `gorm:"column:bloque_fechas_fecha_inicio;type:date;not null"`

	SemanasConfig []SemanaConfigModel `gorm:"foreignKey:SemanaConfigBloqueFechasID;references:BloqueFechasID"`

	BloqueFechasCreatedAt time.Time `gorm:"column:bloque_fechas_created_at;type:timestamptz;not null;autoCreateTime"`
	BloqueFechasUpdatedAt time.Time `gorm:"column:bloque_fechas_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (BloqueDeFechasModel) TableName() string { return "bloques_de_fechas" }
