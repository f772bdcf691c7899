package dto

import (
	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/programas/model"
)

type BateriaResponse struct {
	BateriaID         uuid.UUID `json:"bateria_id"`
	BateriaProgramaID uuid.UUID `json:"bateria_programa_id"`
	BateriaNombre     string    `json:"bateria_nombre"`
	BateriaOrden      int       `json:"bateria_orden"`
}

func FromBateriaModel(m model.BateriaModel) BateriaResponse {
	return BateriaResponse{
		BateriaID:         m.BateriaID,
		BateriaProgramaID: m.BateriaProgramaID,
		BateriaNombre:     m.BateriaNombre,
		BateriaOrden:      m.BateriaOrden,
	}
}

func FromBateriaModels(ms []model.BateriaModel) []BateriaResponse {
	out := make([]BateriaResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromBateriaModel(m))
	}
	return out
}

type CreateBateriaRequest struct {
	BateriaProgramaID uuid.UUID `json:"bateria_programa_id" validate:"required"`
	BateriaNombre     string    `json:"bateria_nombre" validate:"required"`
	BateriaOrden      int       `json:"bateria_orden" validate:"gte=0"`
}

func (r CreateBateriaRequest) ToModel() model.BateriaModel {
	return model.BateriaModel{
		BateriaProgramaID: r.BateriaProgramaID,
		BateriaNombre:     r.BateriaNombre,
		BateriaOrden:      r.BateriaOrden,
	}
}

type UpdateBateriaRequest struct {
	BateriaNombre *string `json:"bateria_nombre" validate:"omitempty,min=1"`
	BateriaOrden  *int    `json:"bateria_orden" validate:"omitempty,gte=0"`
}

func (r UpdateBateriaRequest) ApplyToModel(m *model.BateriaModel) {
	if r.BateriaNombre != nil {
		m.BateriaNombre = *r.BateriaNombre
	}
	if r.BateriaOrden != nil {
		m.BateriaOrden = *r.BateriaOrden
	}
}
