package model

import (
	"time"

	"github.com/google/uuid"

	cmodel "academico_backend/internals/features/academico/cohortes/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
)

type EstadoInscripcion string

const (
	InscripcionActiva   EstadoInscripcion = "ACTIVO"
	InscripcionEgresado EstadoInscripcion = "EGRESADO"
	InscripcionPausada  EstadoInscripcion = "PAUSADO"
	InscripcionBaja     EstadoInscripcion = "BAJA"
)

type InscripcionModel struct {
	InscripcionID uuid.UUID `gorm:"column:inscripcion_id;type:uuid;default:gen_random_uuid();primaryKey"`

	InscripcionEstudianteID uuid.UUID  `gorm:"column:inscripcion_estudiante_id;type:uuid;not null;index"`
	InscripcionCohorteID    uuid.UUID  `gorm:"column:inscripcion_cohorte_id;type:uuid;not null;index"`
	InscripcionModuloID     *uuid.UUID `gorm:"column:inscripcion_modulo_id;type:uuid;index"`

	InscripcionEstado EstadoInscripcion `gorm:"column:inscripcion_estado;not null;default:'ACTIVO'"`
	InscripcionFecha  time.Time         `gorm:"column:inscripcion_fecha;type:date;not null"`

	InscripcionCreatedAt time.Time `gorm:"column:inscripcion_created_at;type:timestamptz;not null;autoCreateTime"`
	InscripcionUpdatedAt time.Time `gorm:"column:inscripcion_updated_at;type:timestamptz;not null;autoUpdateTime"`

	Estudiante *emodel.EstudianteModel `gorm:"foreignKey:InscripcionEstudianteID;references:EstudianteID"`
	Cohorte    *cmodel.CohorteModel    `gorm:"foreignKey:InscripcionCohorteID;references:CohorteID"`
	Modulo     *pmodel.ModuloModel     `gorm:"foreignKey:InscripcionModuloID;references:ModuloID"`
}

func (InscripcionModel) TableName() string { return "inscripciones" }
