package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/examenes/model"
)

/* ===================== RESPONSES ===================== */

// NotaResponse aplana los datos del examen para que el frontend no tenga
// que resolver módulo/bloque/programa por separado.
type NotaResponse struct {
	NotaID            uuid.UUID `json:"nota_id"`
	ExamenID          uuid.UUID `json:"nota_examen_id"`
	EstudianteID      uuid.UUID `json:"nota_estudiante_id"`
	Calificacion      int       `json:"nota_calificacion"`
	Aprobado          bool      `json:"nota_aprobado"`
	FechaCalificacion *string   `json:"nota_fecha_calificacion,omitempty"`

	EsEquivalencia       bool    `json:"nota_es_equivalencia"`
	OrigenEquivalencia   string  `json:"nota_origen_equivalencia,omitempty"`
	FechaRefEquivalencia *string `json:"nota_fecha_ref_equivalencia,omitempty"`

	ExamenTipo           string `json:"examen_tipo,omitempty"`
	ExamenFecha          string `json:"examen_fecha,omitempty"`
	ExamenModuloNombre   string `json:"examen_modulo_nombre,omitempty"`
	ExamenBloqueNombre   string `json:"examen_bloque_nombre,omitempty"`
	ExamenProgramaNombre string `json:"examen_programa_nombre,omitempty"`
}

// NotaContexto trae los nombres resueltos en lote por el controller.
type NotaContexto struct {
	ModuloNombre   map[uuid.UUID]string
	BloqueNombre   map[uuid.UUID]string
	ProgramaNombre map[uuid.UUID]string // keyed por examen_id
}

func FromNotaModel(m model.NotaModel, ctx NotaContexto) NotaResponse {
	resp := NotaResponse{
		NotaID:             m.NotaID,
		ExamenID:           m.NotaExamenID,
		EstudianteID:       m.NotaEstudianteID,
		Calificacion:       m.NotaCalificacion,
		Aprobado:           m.NotaAprobado,
		EsEquivalencia:     m.NotaEsEquivalencia,
		OrigenEquivalencia: m.NotaOrigenEquivalencia,
	}
	resp.FechaCalificacion = formatDatePtr(m.NotaFechaCalificacion)
	resp.FechaRefEquivalencia = formatDatePtr(m.NotaFechaRefEquivalencia)

	if m.Examen != nil {
		resp.ExamenTipo = string(m.Examen.ExamenTipo)
		resp.ExamenFecha = m.Examen.ExamenFecha.Format("2006-01-02")
		if m.Examen.ExamenModuloID != nil {
			resp.ExamenModuloNombre = ctx.ModuloNombre[*m.Examen.ExamenModuloID]
		}
		if m.Examen.ExamenBloqueID != nil {
			resp.ExamenBloqueNombre = ctx.BloqueNombre[*m.Examen.ExamenBloqueID]
		}
		resp.ExamenProgramaNombre = ctx.ProgramaNombre[m.NotaExamenID]
	}
	return resp
}

func FromNotaModels(ms []model.NotaModel, ctx NotaContexto) []NotaResponse {
	out := make([]NotaResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromNotaModel(m, ctx))
	}
	return out
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

/* ===================== REQUESTS ===================== */

type CreateNotaRequest struct {
	ExamenID     uuid.UUID `json:"nota_examen_id" validate:"required"`
	EstudianteID uuid.UUID `json:"nota_estudiante_id" validate:"required"`
	// se redondea al entero más cercano al guardar
	Calificacion      float64    `json:"nota_calificacion" validate:"gte=0,lte=10"`
	Aprobado          bool       `json:"nota_aprobado"`
	FechaCalificacion *time.Time `json:"nota_fecha_calificacion"`

	EsEquivalencia       bool       `json:"nota_es_equivalencia"`
	OrigenEquivalencia   string     `json:"nota_origen_equivalencia"`
	FechaRefEquivalencia *time.Time `json:"nota_fecha_ref_equivalencia"`
}

type UpdateNotaRequest struct {
	Calificacion      *float64   `json:"nota_calificacion" validate:"omitempty,gte=0,lte=10"`
	Aprobado          *bool      `json:"nota_aprobado"`
	FechaCalificacion *time.Time `json:"nota_fecha_calificacion"`

	EsEquivalencia       *bool      `json:"nota_es_equivalencia"`
	OrigenEquivalencia   *string    `json:"nota_origen_equivalencia"`
	FechaRefEquivalencia *time.Time `json:"nota_fecha_ref_equivalencia"`
}
