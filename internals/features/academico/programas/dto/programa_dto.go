package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/programas/model"
)

/* ===================== RESPONSES ===================== */

// Read model plano para listados; el detalle usa ProgramaEstructuraResponse.
type ProgramaResponse struct {
	ProgramaID     uuid.UUID `json:"programa_id"`
	ProgramaCodigo string    `json:"programa_codigo"`
	ProgramaNombre string    `json:"programa_nombre"`
	ProgramaActivo bool      `json:"programa_activo"`
	ProgramaCreado time.Time `json:"programa_created_at"`
}

func FromProgramaModel(m model.ProgramaModel) ProgramaResponse {
	return ProgramaResponse{
		ProgramaID:     m.ProgramaID,
		ProgramaCodigo: m.ProgramaCodigo,
		ProgramaNombre: m.ProgramaNombre,
		ProgramaActivo: m.ProgramaActivo,
		ProgramaCreado: m.ProgramaCreatedAt,
	}
}

func FromProgramaModels(ms []model.ProgramaModel) []ProgramaResponse {
	out := make([]ProgramaResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromProgramaModel(m))
	}
	return out
}

/* ===================== REQUESTS ===================== */

type CreateProgramaRequest struct {
	ProgramaCodigo string `json:"programa_codigo" validate:"required"`
	ProgramaNombre string `json:"programa_nombre" validate:"required"`
	ProgramaActivo *bool  `json:"programa_activo"`
}

func (r CreateProgramaRequest) ToModel() model.ProgramaModel {
	activo := true
	if r.ProgramaActivo != nil {
		activo = *r.ProgramaActivo
	}
	return model.ProgramaModel{
		ProgramaCodigo: r.ProgramaCodigo,
		ProgramaNombre: r.ProgramaNombre,
		ProgramaActivo: activo,
	}
}

type UpdateProgramaRequest struct {
	ProgramaCodigo *string `json:"programa_codigo" validate:"omitempty,min=1"`
	ProgramaNombre *string `json:"programa_nombre" validate:"omitempty,min=1"`
	ProgramaActivo *bool   `json:"programa_activo"`
}

func (r UpdateProgramaRequest) ApplyToModel(m *model.ProgramaModel) {
	if r.ProgramaCodigo != nil {
		m.ProgramaCodigo = *r.ProgramaCodigo
	}
	if r.ProgramaNombre != nil {
		m.ProgramaNombre = *r.ProgramaNombre
	}
	if r.ProgramaActivo != nil {
		m.ProgramaActivo = *r.ProgramaActivo
	}
}
