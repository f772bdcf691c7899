package model

import (
	"time"

	"github.com/google/uuid"
)

type ModuloModel struct {
	ModuloID uuid.UUID `gorm:"column:modulo_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ModuloBloqueID uuid.UUID `gorm:"column:modulo_bloque_id;type:uuid;not null;index"`
	ModuloNombre   string    `gorm:"column:modulo_nombre;not null"`
	ModuloOrden    int       `gorm:"column:modulo_orden;not null;default:0"`

	ModuloFechaInicio *time.Time `gorm:"column:modulo_fecha_inicio;type:date"`
	ModuloFechaFin    *time.Time `gorm:"column:modulo_fecha_fin;type:date"`

	ModuloEsPractica                  bool `gorm:"column:modulo_es_practica;not null;default:false"`
	ModuloAsistenciaRequeridaPractica bool `gorm:"column:modulo_asistencia_requerida_practica;not null;default:false"`

	ModuloCreatedAt time.Time `gorm:"column:modulo_created_at;type:timestamptz;not null;autoCreateTime"`
	ModuloUpdatedAt time.Time `gorm:"column:modulo_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (ModuloModel) TableName() string { return "modulos" }
