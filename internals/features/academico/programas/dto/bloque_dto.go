package dto

import (
	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/programas/model"
)

type BloqueResponse struct {
	BloqueID        uuid.UUID   `json:"bloque_id"`
	BloqueBateriaID uuid.UUID   `json:"bloque_bateria_id"`
	BloqueNombre    string      `json:"bloque_nombre"`
	BloqueOrden     int         `json:"bloque_orden"`
	Correlativas    []uuid.UUID `json:"correlativas,omitempty"`
}

func FromBloqueModel(m model.BloqueModel) BloqueResponse {
	resp := BloqueResponse{
		BloqueID:        m.BloqueID,
		BloqueBateriaID: m.BloqueBateriaID,
		BloqueNombre:    m.BloqueNombre,
		BloqueOrden:     m.BloqueOrden,
	}
	for _, c := range m.Correlativas {
		resp.Correlativas = append(resp.Correlativas, c.BloqueID)
	}
	return resp
}

func FromBloqueModels(ms []model.BloqueModel) []BloqueResponse {
	out := make([]BloqueResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromBloqueModel(m))
	}
	return out
}

type CreateBloqueRequest struct {
	BloqueBateriaID uuid.UUID   `json:"bloque_bateria_id" validate:"required"`
	BloqueNombre    string      `json:"bloque_nombre" validate:"required"`
	BloqueOrden     int         `json:"bloque_orden" validate:"gte=0"`
	Correlativas    []uuid.UUID `json:"correlativas"`
}

func (r CreateBloqueRequest) ToModel() model.BloqueModel {
	return model.BloqueModel{
		BloqueBateriaID: r.BloqueBateriaID,
		BloqueNombre:    r.BloqueNombre,
		BloqueOrden:     r.BloqueOrden,
	}
}

type UpdateBloqueRequest struct {
	BloqueNombre *string      `json:"bloque_nombre" validate:"omitempty,min=1"`
	BloqueOrden  *int         `json:"bloque_orden" validate:"omitempty,gte=0"`
	Correlativas *[]uuid.UUID `json:"correlativas"`
}

func (r UpdateBloqueRequest) ApplyToModel(m *model.BloqueModel) {
	if r.BloqueNombre != nil {
		m.BloqueNombre = *r.BloqueNombre
	}
	if r.BloqueOrden != nil {
		m.BloqueOrden = *r.BloqueOrden
	}
}
