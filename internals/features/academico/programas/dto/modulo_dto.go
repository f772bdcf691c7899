package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/programas/model"
)

type ModuloResponse struct {
	ModuloID          uuid.UUID  `json:"modulo_id"`
	ModuloBloqueID    uuid.UUID  `json:"modulo_bloque_id"`
	ModuloNombre      string     `json:"modulo_nombre"`
	ModuloOrden       int        `json:"modulo_orden"`
	ModuloFechaInicio *time.Time `json:"modulo_fecha_inicio,omitempty"`
	ModuloFechaFin    *time.Time `json:"modulo_fecha_fin,omitempty"`
	ModuloEsPractica  bool       `json:"modulo_es_practica"`
	AsistenciaReqPrac bool       `json:"modulo_asistencia_requerida_practica"`
}

func FromModuloModel(m model.ModuloModel) ModuloResponse {
	return ModuloResponse{
		ModuloID:          m.ModuloID,
		ModuloBloqueID:    m.ModuloBloqueID,
		ModuloNombre:      m.ModuloNombre,
		ModuloOrden:       m.ModuloOrden,
		ModuloFechaInicio: m.ModuloFechaInicio,
		ModuloFechaFin:    m.ModuloFechaFin,
		ModuloEsPractica:  m.ModuloEsPractica,
		AsistenciaReqPrac: m.ModuloAsistenciaRequeridaPractica,
	}
}

func FromModuloModels(ms []model.ModuloModel) []ModuloResponse {
	out := make([]ModuloResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModuloModel(m))
	}
	return out
}

type CreateModuloRequest struct {
	ModuloBloqueID    uuid.UUID  `json:"modulo_bloque_id" validate:"required"`
	ModuloNombre      string     `json:"modulo_nombre" validate:"required"`
	ModuloOrden       int        `json:"modulo_orden" validate:"gte=0"`
	ModuloFechaInicio *time.Time `json:"modulo_fecha_inicio"`
	ModuloFechaFin    *time.Time `json:"modulo_fecha_fin"`
	ModuloEsPractica  bool       `json:"modulo_es_practica"`
	AsistenciaReqPrac bool       `json:"modulo_asistencia_requerida_practica"`
}

func (r CreateModuloRequest) ToModel() model.ModuloModel {
	return model.ModuloModel{
		ModuloBloqueID:                    r.ModuloBloqueID,
		ModuloNombre:                      r.ModuloNombre,
		ModuloOrden:                       r.ModuloOrden,
		ModuloFechaInicio:                 r.ModuloFechaInicio,
		ModuloFechaFin:                    r.ModuloFechaFin,
		ModuloEsPractica:                  r.ModuloEsPractica,
		ModuloAsistenciaRequeridaPractica: r.AsistenciaReqPrac,
	}
}

type UpdateModuloRequest struct {
	ModuloNombre      *string    `json:"modulo_nombre" validate:"omitempty,min=1"`
	ModuloOrden       *int       `json:"modulo_orden" validate:"omitempty,gte=0"`
	ModuloFechaInicio *time.Time `json:"modulo_fecha_inicio"`
	ModuloFechaFin    *time.Time `json:"modulo_fecha_fin"`
	ModuloEsPractica  *bool      `json:"modulo_es_practica"`
	AsistenciaReqPrac *bool      `json:"modulo_asistencia_requerida_practica"`
}

func (r UpdateModuloRequest) ApplyToModel(m *model.ModuloModel) {
	if r.ModuloNombre != nil {
		m.ModuloNombre = *r.ModuloNombre
	}
	if r.ModuloOrden != nil {
		m.ModuloOrden = *r.ModuloOrden
	}
	if r.ModuloFechaInicio != nil {
		m.ModuloFechaInicio = r.ModuloFechaInicio
	}
	if r.ModuloFechaFin != nil {
		m.ModuloFechaFin = r.ModuloFechaFin
	}
	if r.ModuloEsPractica != nil {
		m.ModuloEsPractica = *r.ModuloEsPractica
	}
	if r.AsistenciaReqPrac != nil {
		m.ModuloAsistenciaRequeridaPractica = *r.AsistenciaReqPrac
	}
}
