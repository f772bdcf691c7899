package model

import (
	"time"

	"github.com/google/uuid"
)

type EstatusEstudiante string

const (
	EstatusActivo EstatusEstudiante = "Activo"
	EstatusBaja   EstatusEstudiante = "Baja"
)

type EstudianteModel struct {
	EstudianteID uuid.UUID `gorm:"column:estudiante_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EstudianteDNI      string            `gorm:"column:estudiante_dni;uniqueIndex;not null"`
	EstudianteNombre   string            `gorm:"column:estudiante_nombre;not null"`
	EstudianteApellido string            `gorm:"column:estudiante_apellido;not null"`
	EstudianteEmail    string            `gorm:"column:estudiante_email"`
	EstudianteTelefono string            `gorm:"column:estudiante_telefono"`
	EstudianteCiudad   string            `gorm:"column:estudiante_ciudad"`
	EstudianteEstatus  EstatusEstudiante `gorm:"column:estudiante_estatus;not null;default:'Activo'"`

	EstudianteCreatedAt time.Time `gorm:"column:estudiante_created_at;type:timestamptz;not null;autoCreateTime"`
	EstudianteUpdatedAt time.Time `gorm:"column:estudiante_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (EstudianteModel) TableName() string { return "estudiantes" }
