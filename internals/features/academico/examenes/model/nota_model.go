package model

import (
	"time"

	"github.com/google/uuid"
)

type NotaModel struct {
	NotaID uuid.UUID `gorm:"column:nota_id;type:uuid;default:gen_random_uuid();primaryKey"`

	NotaExamenID     uuid.UUID `gorm:"column:nota_examen_id;type:uuid;not null;index"`
	NotaEstudianteID uuid.UUID `gorm:"column:nota_estudiante_id;type:uuid;not null;index"`

	// redondeada a entero al escribir
	NotaCalificacion      int        `gorm:"column:nota_calificacion;not null"`
	NotaAprobado          bool       `gorm:"column:nota_aprobado;not null;default:false"`
	NotaFechaCalificacion *time.Time `gorm:"column:nota_fecha_calificacion;type:date"`

	NotaEsEquivalencia       bool       `gorm:"column:nota_es_equivalencia;not null;default:false"`
	NotaOrigenEquivalencia   string     `gorm:"column:nota_origen_equivalencia"`
	NotaFechaRefEquivalencia *time.Time `gorm:"column:nota_fecha_ref_equivalencia;type:date"`

	NotaCreatedAt time.Time `gorm:"column:nota_created_at;type:timestamptz;not null;autoCreateTime"`
	NotaUpdatedAt time.Time `gorm:"column:nota_updated_at;type:timestamptz;not null;autoUpdateTime"`

	Examen *ExamenModel `gorm:"foreignKey:NotaExamenID;references:ExamenID"`
}

func (NotaModel) TableName() string { return "notas" }

// A lo sumo una nota aprobada por (examen, estudiante). El chequeo
// read-then-write vive en el service; este índice parcial es el respaldo.
// CREATE UNIQUE INDEX uq_notas_aprobadas ON notas (nota_examen_id, nota_estudiante_id) WHERE nota_aprobado;
