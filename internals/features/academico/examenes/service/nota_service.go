package service

import (
	"errors"
	"math"

	model "academico_backend/internals/features/academico/examenes/model"
)

var (
	ErrAprobadaInsuficiente = errors.New("una nota aprobada requiere calificación 6 o mayor")
	ErrEquivalenciaTipo     = errors.New("nota_es_equivalencia solo aplica a exámenes FINAL_VIRTUAL o FINAL_SINC")
)

// NotaInput son los campos de una nota que dependen unos de otros.
type NotaInput struct {
	Calificacion   float64
	Aprobado       bool
	EsEquivalencia bool
	TipoExamen     model.TipoExamen
}

// ValidarNota aplica las reglas de consistencia y devuelve la calificación
// ya redondeada al entero más cercano, que es lo que se persiste.
func ValidarNota(in NotaInput) (int, error) {
	calificacion := int(math.Round(in.Calificacion))

	if in.Aprobado && calificacion < 6 {
		return 0, ErrAprobadaInsuficiente
	}
	if in.EsEquivalencia &&
		in.TipoExamen != model.TipoFinalVirtual && in.TipoExamen != model.TipoFinalSinc {
		return 0, ErrEquivalenciaTipo
	}
	return calificacion, nil
}
