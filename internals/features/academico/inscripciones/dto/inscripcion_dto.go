package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/inscripciones/model"
)

/* ===================== RESPONSES ===================== */

type EstudianteResumen struct {
	EstudianteID uuid.UUID `json:"estudiante_id"`
	DNI          string    `json:"estudiante_dni"`
	Nombre       string    `json:"estudiante_nombre"`
	Apellido     string    `json:"estudiante_apellido"`
	Estatus      string    `json:"estudiante_estatus"`
}

type CohorteResumen struct {
	CohorteID          uuid.UUID `json:"cohorte_id"`
	CohorteNombre      string    `json:"cohorte_nombre"`
	ProgramaNombre     string    `json:"programa_nombre,omitempty"`
	BloqueFechasNombre string    `json:"bloque_fechas_nombre,omitempty"`
}

type ModuloResumen struct {
	ModuloID     uuid.UUID `json:"modulo_id"`
	ModuloNombre string    `json:"modulo_nombre"`
}

type InscripcionResponse struct {
	InscripcionID uuid.UUID `json:"inscripcion_id"`
	Estado        string    `json:"inscripcion_estado"`
	Fecha         string    `json:"inscripcion_fecha"`

	Estudiante *EstudianteResumen `json:"estudiante,omitempty"`
	Cohorte    *CohorteResumen    `json:"cohorte,omitempty"`
	Modulo     *ModuloResumen     `json:"modulo,omitempty"`
}

func FromModel(m model.InscripcionModel) InscripcionResponse {
	resp := InscripcionResponse{
		InscripcionID: m.InscripcionID,
		Estado:        string(m.InscripcionEstado),
		Fecha:         m.InscripcionFecha.Format("2006-01-02"),
	}
	if m.Estudiante != nil {
		resp.Estudiante = &EstudianteResumen{
			EstudianteID: m.Estudiante.EstudianteID,
			DNI:          m.Estudiante.EstudianteDNI,
			Nombre:       m.Estudiante.EstudianteNombre,
			Apellido:     m.Estudiante.EstudianteApellido,
			Estatus:      string(m.Estudiante.EstudianteEstatus),
		}
	}
	if m.Cohorte != nil {
		cr := CohorteResumen{
			CohorteID:     m.Cohorte.CohorteID,
			CohorteNombre: m.Cohorte.CohorteNombre,
		}
		if m.Cohorte.Programa != nil {
			cr.ProgramaNombre = m.Cohorte.Programa.ProgramaNombre
		}
		if m.Cohorte.BloqueFechas != nil {
			cr.BloqueFechasNombre = m.Cohorte.BloqueFechas.BloqueFechasNombre
		}
		resp.Cohorte = &cr
	}
	if m.Modulo != nil {
		resp.Modulo = &ModuloResumen{
			ModuloID:     m.Modulo.ModuloID,
			ModuloNombre: m.Modulo.ModuloNombre,
		}
	}
	return resp
}

func FromModels(ms []model.InscripcionModel) []InscripcionResponse {
	out := make([]InscripcionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===================== REQUESTS ===================== */

type CreateInscripcionRequest struct {
	EstudianteID uuid.UUID  `json:"inscripcion_estudiante_id" validate:"required"`
	CohorteID    uuid.UUID  `json:"inscripcion_cohorte_id" validate:"required"`
	ModuloID     *uuid.UUID `json:"inscripcion_modulo_id"`
	Estado       string     `json:"inscripcion_estado" validate:"omitempty,oneof=ACTIVO EGRESADO PAUSADO BAJA"`
	Fecha        *time.Time `json:"inscripcion_fecha"`
}

func (r CreateInscripcionRequest) ToModel() model.InscripcionModel {
	m := model.InscripcionModel{
		InscripcionEstudianteID: r.EstudianteID,
		InscripcionCohorteID:    r.CohorteID,
		InscripcionModuloID:     r.ModuloID,
		InscripcionEstado:       model.InscripcionActiva,
		InscripcionFecha:        time.Now(),
	}
	if r.Estado != "" {
		m.InscripcionEstado = model.EstadoInscripcion(r.Estado)
	}
	if r.Fecha != nil {
		m.InscripcionFecha = *r.Fecha
	}
	return m
}

type UpdateInscripcionRequest struct {
	ModuloID *uuid.UUID `json:"inscripcion_modulo_id"`
	Estado   *string    `json:"inscripcion_estado" validate:"omitempty,oneof=ACTIVO EGRESADO PAUSADO BAJA"`
	Fecha    *time.Time `json:"inscripcion_fecha"`
}

func (r UpdateInscripcionRequest) ApplyToModel(m *model.InscripcionModel) {
	if r.ModuloID != nil {
		m.InscripcionModuloID = r.ModuloID
	}
	if r.Estado != nil {
		m.InscripcionEstado = model.EstadoInscripcion(*r.Estado)
	}
	if r.Fecha != nil {
		m.InscripcionFecha = *r.Fecha
	}
}
