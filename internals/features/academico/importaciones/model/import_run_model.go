package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type TipoImport string

const (
	ImportInscripciones TipoImport = "inscripciones"
	ImportAsistencias   TipoImport = "asistencias"
	ImportNotas         TipoImport = "notas"
)

// ImportRunModel registra cada corrida de importación CSV: qué archivo
// entró, cuántas filas se crearon u omitieron y los errores por fila.
type ImportRunModel struct {
	ImportRunID uuid.UUID `gorm:"column:import_run_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ImportRunTipo    TipoImport `gorm:"column:import_run_tipo;not null;index"`
	ImportRunArchivo string     `gorm:"column:import_run_archivo;not null"`

	ImportRunCreados  int            `gorm:"column:import_run_creados;not null;default:0"`
	ImportRunOmitidos int            `gorm:"column:import_run_omitidos;not null;default:0"`
	ImportRunErrores  pq.StringArray `gorm:"column:import_run_errores;type:text[]"`

	// resumen libre para el frontend (totales por cohorte, módulo, etc.)
	ImportRunResumen datatypes.JSON `gorm:"column:import_run_resumen;type:jsonb"`

	ImportRunCreatedAt time.Time `gorm:"column:import_run_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (ImportRunModel) TableName() string { return "import_runs" }
