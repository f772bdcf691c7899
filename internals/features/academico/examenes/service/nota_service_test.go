package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "academico_backend/internals/features/academico/examenes/model"
)

func TestValidarNotaRedondea(t *testing.T) {
	calificacion, err := ValidarNota(NotaInput{Calificacion: 7.6, TipoExamen: model.TipoParcial})
	require.NoError(t, err)
	assert.Equal(t, 8, calificacion)

	calificacion, err = ValidarNota(NotaInput{Calificacion: 7.4, TipoExamen: model.TipoParcial})
	require.NoError(t, err)
	assert.Equal(t, 7, calificacion)
}

func TestValidarNotaAprobadaExigeSeis(t *testing.T) {
	_, err := ValidarNota(NotaInput{
		Calificacion: 5.4,
		Aprobado:     true,
		TipoExamen:   model.TipoFinalVirtual,
	})
	assert.ErrorIs(t, err, ErrAprobadaInsuficiente)

	// 5.5 redondea a 6: pasa
	calificacion, err := ValidarNota(NotaInput{
		Calificacion: 5.5,
		Aprobado:     true,
		TipoExamen:   model.TipoFinalVirtual,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, calificacion)
}

func TestValidarNotaDesaprobadaBajaEsValida(t *testing.T) {
	calificacion, err := ValidarNota(NotaInput{Calificacion: 2, TipoExamen: model.TipoRecuperatorio})
	require.NoError(t, err)
	assert.Equal(t, 2, calificacion)
}

func TestValidarNotaEquivalenciaSoloEnFinales(t *testing.T) {
	_, err := ValidarNota(NotaInput{
		Calificacion:   8,
		Aprobado:       true,
		EsEquivalencia: true,
		TipoExamen:     model.TipoParcial,
	})
	assert.ErrorIs(t, err, ErrEquivalenciaTipo)

	for _, tipo := range []model.TipoExamen{model.TipoFinalVirtual, model.TipoFinalSinc} {
		_, err := ValidarNota(NotaInput{
			Calificacion:   8,
			Aprobado:       true,
			EsEquivalencia: true,
			TipoExamen:     tipo,
		})
		assert.NoError(t, err, "tipo %s", tipo)
	}
}
