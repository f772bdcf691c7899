package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/examenes/model"
)

/* ===================== RESPONSES ===================== */

type ExamenResponse struct {
	ExamenID     uuid.UUID  `json:"examen_id"`
	ModuloID     *uuid.UUID `json:"examen_modulo_id,omitempty"`
	ModuloNombre string     `json:"examen_modulo_nombre,omitempty"`
	BloqueID     *uuid.UUID `json:"examen_bloque_id,omitempty"`
	BloqueNombre string     `json:"examen_bloque_nombre,omitempty"`
	Tipo         string     `json:"examen_tipo"`
	Fecha        string     `json:"examen_fecha"`
	Peso         float64    `json:"examen_peso"`
}

// ExamenContexto trae los nombres de módulo/bloque resueltos en lote por el
// controller, para no disparar una consulta por fila.
type ExamenContexto struct {
	ModuloNombre map[uuid.UUID]string
	BloqueNombre map[uuid.UUID]string
}

func FromExamenModel(m model.ExamenModel, ctx ExamenContexto) ExamenResponse {
	resp := ExamenResponse{
		ExamenID: m.ExamenID,
		ModuloID: m.ExamenModuloID,
		BloqueID: m.ExamenBloqueID,
		Tipo:     string(m.ExamenTipo),
		Fecha:    m.ExamenFecha.Format("2006-01-02"),
		Peso:     m.ExamenPeso,
	}
	if m.ExamenModuloID != nil {
		resp.ModuloNombre = ctx.ModuloNombre[*m.ExamenModuloID]
	}
	if m.ExamenBloqueID != nil {
		resp.BloqueNombre = ctx.BloqueNombre[*m.ExamenBloqueID]
	}
	return resp
}

func FromExamenModels(ms []model.ExamenModel, ctx ExamenContexto) []ExamenResponse {
	out := make([]ExamenResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromExamenModel(m, ctx))
	}
	return out
}

/* ===================== REQUESTS ===================== */

type CreateExamenRequest struct {
	ModuloID *uuid.UUID `json:"examen_modulo_id"`
	BloqueID *uuid.UUID `json:"examen_bloque_id"`
	Tipo     string     `json:"examen_tipo" validate:"required,oneof=PARCIAL RECUP FINAL_VIRTUAL FINAL_SINC EQUIVALENCIA"`
	Fecha    time.Time  `json:"examen_fecha" validate:"required"`
	Peso     *float64   `json:"examen_peso" validate:"omitempty,gt=0"`
}

func (r CreateExamenRequest) ToModel() model.ExamenModel {
	m := model.ExamenModel{
		ExamenModuloID: r.ModuloID,
		ExamenBloqueID: r.BloqueID,
		ExamenTipo:     model.TipoExamen(r.Tipo),
		ExamenFecha:    r.Fecha,
		ExamenPeso:     1,
	}
	if r.Peso != nil {
		m.ExamenPeso = *r.Peso
	}
	return m
}

type UpdateExamenRequest struct {
	ModuloID *uuid.UUID `json:"examen_modulo_id"`
	BloqueID *uuid.UUID `json:"examen_bloque_id"`
	Tipo     *string    `json:"examen_tipo" validate:"omitempty,oneof=PARCIAL RECUP FINAL_VIRTUAL FINAL_SINC EQUIVALENCIA"`
	Fecha    *time.Time `json:"examen_fecha"`
	Peso     *float64   `json:"examen_peso" validate:"omitempty,gt=0"`
}

func (r UpdateExamenRequest) ApplyToModel(m *model.ExamenModel) {
	if r.ModuloID != nil {
		m.ExamenModuloID = r.ModuloID
	}
	if r.BloqueID != nil {
		m.ExamenBloqueID = r.BloqueID
	}
	if r.Tipo != nil {
		m.ExamenTipo = model.TipoExamen(*r.Tipo)
	}
	if r.Fecha != nil {
		m.ExamenFecha = *r.Fecha
	}
	if r.Peso != nil {
		m.ExamenPeso = *r.Peso
	}
}
