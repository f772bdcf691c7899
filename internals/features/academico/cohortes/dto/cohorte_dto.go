package dto

import (
	"sort"
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/cohortes/model"
)

/* ===================== RESPONSES ===================== */

type SemanaConfigResponse struct {
	SemanaConfigID uuid.UUID `json:"semana_config_id"`
	Orden          int       `json:"orden"`
	Tipo           string    `json:"tipo"`
}

type BloqueDeFechasResponse struct {
	BloqueFechasID     uuid.UUID              `json:"bloque_fechas_id"`
	BloqueFechasNombre string                 `json:"bloque_fechas_nombre"`
	FechaInicio        time.Time              `json:"fecha_inicio"`
	SemanasConfig      []SemanaConfigResponse `json:"semanas_config"`
}

func FromBloqueDeFechasModel(m model.BloqueDeFechasModel) BloqueDeFechasResponse {
	semanas := make([]SemanaConfigResponse, 0, len(m.SemanasConfig))
	for _, s := range m.SemanasConfig {
		semanas = append(semanas, SemanaConfigResponse{
			SemanaConfigID: s.SemanaConfigID,
			Orden:          s.SemanaConfigOrden,
			Tipo:           string(s.SemanaConfigTipo),
		})
	}
	sort.Slice(semanas, func(i, j int) bool { return semanas[i].Orden < semanas[j].Orden })
	return BloqueDeFechasResponse{
		BloqueFechasID:     m.BloqueFechasID,
		BloqueFechasNombre: m.BloqueFechasNombre,
		FechaInicio:        m.BloqueFechasFechaInicio,
		SemanasConfig:      semanas,
	}
}

func FromBloqueDeFechasModels(ms []model.BloqueDeFechasModel) []BloqueDeFechasResponse {
	out := make([]BloqueDeFechasResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromBloqueDeFechasModel(m))
	}
	return out
}

type CohorteResponse struct {
	CohorteID      uuid.UUID               `json:"cohorte_id"`
	CohorteNombre  string                  `json:"cohorte_nombre"`
	ProgramaID     uuid.UUID               `json:"programa_id"`
	ProgramaNombre string                  `json:"programa_nombre,omitempty"`
	BloqueFechas   *BloqueDeFechasResponse `json:"bloque_fechas,omitempty"`
}

func FromCohorteModel(m model.CohorteModel) CohorteResponse {
	resp := CohorteResponse{
		CohorteID:     m.CohorteID,
		CohorteNombre: m.CohorteNombre,
		ProgramaID:    m.CohorteProgramaID,
	}
	if m.Programa != nil {
		resp.ProgramaNombre = m.Programa.ProgramaNombre
	}
	if m.BloqueFechas != nil {
		bf := FromBloqueDeFechasModel(*m.BloqueFechas)
		resp.BloqueFechas = &bf
	}
	return resp
}

func FromCohorteModels(ms []model.CohorteModel) []CohorteResponse {
	out := make([]CohorteResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCohorteModel(m))
	}
	return out
}

/* ===================== REQUESTS ===================== */

type CreateBloqueDeFechasRequest struct {
	BloqueFechasNombre string    `json:"bloque_fechas_nombre" validate:"required"`
	FechaInicio        time.Time `json:"fecha_inicio" validate:"required"`
}

func (r CreateBloqueDeFechasRequest) ToModel() model.BloqueDeFechasModel {
	return model.BloqueDeFechasModel{
		BloqueFechasNombre:      r.BloqueFechasNombre,
		BloqueFechasFechaInicio: r.FechaInicio,
	}
}

type UpdateBloqueDeFechasRequest struct {
	BloqueFechasNombre *string    `json:"bloque_fechas_nombre" validate:"omitempty,min=1"`
	FechaInicio        *time.Time `json:"fecha_inicio"`
}

func (r UpdateBloqueDeFechasRequest) ApplyToModel(m *model.BloqueDeFechasModel) {
	if r.BloqueFechasNombre != nil {
		m.BloqueFechasNombre = *r.BloqueFechasNombre
	}
	if r.FechaInicio != nil {
		m.BloqueFechasFechaInicio = *r.FechaInicio
	}
}

type SemanaSecuenciaItem struct {
	Tipo string `json:"tipo" validate:"required,oneof=CURSADA EXAMEN RECESO PRACTICA"`
}

type GuardarSecuenciaRequest struct {
	Semanas []SemanaSecuenciaItem `json:"semanas" validate:"dive"`
}

type CreateCohorteRequest struct {
	CohorteNombre  string    `json:"cohorte_nombre" validate:"required"`
	ProgramaID     uuid.UUID `json:"programa_id" validate:"required"`
	BloqueFechasID uuid.UUID `json:"bloque_fechas_id" validate:"required"`
}

func (r CreateCohorteRequest) ToModel() model.CohorteModel {
	return model.CohorteModel{
		CohorteNombre:         r.CohorteNombre,
		CohorteProgramaID:     r.ProgramaID,
		CohorteBloqueFechasID: r.BloqueFechasID,
	}
}

type UpdateCohorteRequest struct {
	CohorteNombre  *string    `json:"cohorte_nombre" validate:"omitempty,min=1"`
	ProgramaID     *uuid.UUID `json:"programa_id"`
	BloqueFechasID *uuid.UUID `json:"bloque_fechas_id"`
}

func (r UpdateCohorteRequest) ApplyToModel(m *model.CohorteModel) {
	if r.CohorteNombre != nil {
		m.CohorteNombre = *r.CohorteNombre
	}
	if r.ProgramaID != nil {
		m.CohorteProgramaID = *r.ProgramaID
	}
	if r.BloqueFechasID != nil {
		m.CohorteBloqueFechasID = *r.BloqueFechasID
	}
}
