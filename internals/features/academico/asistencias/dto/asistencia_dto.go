package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/asistencias/model"
)

type AsistenciaResponse struct {
	AsistenciaID  uuid.UUID `json:"asistencia_id"`
	EstudianteID  uuid.UUID `json:"asistencia_estudiante_id"`
	ModuloID      uuid.UUID `json:"asistencia_modulo_id"`
	Fecha         string    `json:"asistencia_fecha"`
	Presente      bool      `json:"asistencia_presente"`
	ArchivoOrigen string    `json:"asistencia_archivo_origen,omitempty"`
}

func FromModel(m model.AsistenciaModel) AsistenciaResponse {
	return AsistenciaResponse{
		AsistenciaID:  m.AsistenciaID,
		EstudianteID:  m.AsistenciaEstudianteID,
		ModuloID:      m.AsistenciaModuloID,
		Fecha:         m.AsistenciaFecha.Format("2006-01-02"),
		Presente:      m.AsistenciaPresente,
		ArchivoOrigen: m.AsistenciaArchivoOrigen,
	}
}

func FromModels(ms []model.AsistenciaModel) []AsistenciaResponse {
	out := make([]AsistenciaResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

type CreateAsistenciaRequest struct {
	EstudianteID  uuid.UUID `json:"asistencia_estudiante_id" validate:"required"`
	ModuloID      uuid.UUID `json:"asistencia_modulo_id" validate:"required"`
	Fecha         time.Time `json:"asistencia_fecha" validate:"required"`
	Presente      bool      `json:"asistencia_presente"`
	ArchivoOrigen string    `json:"asistencia_archivo_origen"`
}

func (r CreateAsistenciaRequest) ToModel() model.AsistenciaModel {
	return model.AsistenciaModel{
		AsistenciaEstudianteID:  r.EstudianteID,
		AsistenciaModuloID:      r.ModuloID,
		AsistenciaFecha:         r.Fecha,
		AsistenciaPresente:      r.Presente,
		AsistenciaArchivoOrigen: r.ArchivoOrigen,
	}
}

type UpdateAsistenciaRequest struct {
	Fecha         *time.Time `json:"asistencia_fecha"`
	Presente      *bool      `json:"asistencia_presente"`
	ArchivoOrigen *string    `json:"asistencia_archivo_origen"`
}

func (r UpdateAsistenciaRequest) ApplyToModel(m *model.AsistenciaModel) {
	if r.Fecha != nil {
		m.AsistenciaFecha = *r.Fecha
	}
	if r.Presente != nil {
		m.AsistenciaPresente = *r.Presente
	}
	if r.ArchivoOrigen != nil {
		m.AsistenciaArchivoOrigen = *r.ArchivoOrigen
	}
}
