package model

import (
	"time"

	"github.com/google/uuid"
)

type AsistenciaModel struct {
	AsistenciaID uuid.UUID `gorm:"column:asistencia_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AsistenciaEstudianteID uuid.UUID `gorm:"column:asistencia_estudiante_id;type:uuid;not null;index"`
	AsistenciaModuloID     uuid.UUID `gorm:"column:asistencia_modulo_id;type:uuid;not null;index"`

	AsistenciaFecha    time.Time `gorm:"column:asistencia_fecha;type:date;not null;index"`
	AsistenciaPresente bool      `gorm:"column:asistencia_presente;not null;default:false"`

	// nombre del CSV que originó el registro; vacío para cargas manuales
	AsistenciaArchivoOrigen string `gorm:"column:asistencia_archivo_origen"`

	AsistenciaCreatedAt time.Time `gorm:"column:asistencia_created_at;type:timestamptz;not null;autoCreateTime"`
	AsistenciaUpdatedAt time.Time `gorm:"column:asistencia_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (AsistenciaModel) TableName() string { return "asistencias" }
