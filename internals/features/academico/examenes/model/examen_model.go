package model

import (
	"time"

	"github.com/google/uuid"
)

type TipoExamen string

const (
	TipoParcial       TipoExamen = "PARCIAL"
	TipoRecuperatorio TipoExamen = "RECUP"
	TipoFinalVirtual  TipoExamen = "FINAL_VIRTUAL"
	TipoFinalSinc     TipoExamen = "FINAL_SINC"
	TipoEquivalencia  TipoExamen = "EQUIVALENCIA"
)

// TiposFinales son los tipos que cuentan para aprobar un bloque.
var TiposFinales = []TipoExamen{TipoFinalVirtual, TipoFinalSinc, TipoEquivalencia}

// Un examen cuelga de un módulo (parciales/recuperatorios) o directamente
// de un bloque (finales y equivalencias). Nunca de ambos.
type ExamenModel struct {
	ExamenID uuid.UUID `gorm:"column:examen_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ExamenModuloID *uuid.UUID `gorm:"column:examen_modulo_id;type:uuid;index"`
	ExamenBloqueID *uuid.UUID `gorm:"column:examen_bloque_id;type:uuid;index"`

	ExamenTipo  TipoExamen `gorm:"column:examen_tipo;not null"`
	ExamenFecha time.Time  `gorm:"column:examen_fecha;type:date;not null"`
	ExamenPeso  float64    `gorm:"column:examen_peso;not null;default:1"`

	ExamenCreatedAt time.Time `gorm:"column:examen_created_at;type:timestamptz;not null;autoCreateTime"`
	ExamenUpdatedAt time.Time `gorm:"column:examen_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (ExamenModel) TableName() string { return "examenes" }

func (t TipoExamen) EsFinal() bool {
	return t == TipoFinalVirtual || t == TipoFinalSinc || t == TipoEquivalencia
}
