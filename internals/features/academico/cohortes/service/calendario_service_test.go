package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "academico_backend/internals/features/academico/cohortes/model"
)

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func semanas(tipos ...model.TipoSemana) []model.SemanaConfigModel {
	out := make([]model.SemanaConfigModel, 0, len(tipos))
	for i, t := range tipos {
		out = append(out, model.SemanaConfigModel{
			SemanaConfigOrden: i + 1,
			SemanaConfigTipo:  t,
		})
	}
	return out
}

func TestArmarCalendarioArrancaEnLunes(t *testing.T) {
	// 2025-03-03 es lunes
	cal := ArmarCalendario(fecha(2025, time.March, 3), semanas(
		model.SemanaCursada, model.SemanaCursada, model.SemanaExamen,
	))
	require.Len(t, cal, 3)

	assert.Equal(t, fecha(2025, time.March, 3), cal[0].FechaInicio)
	assert.Equal(t, fecha(2025, time.March, 8), cal[0].FechaFin) // sábado

	// las siguientes semanas arrancan el lunes posterior
	assert.Equal(t, fecha(2025, time.March, 10), cal[1].FechaInicio)
	assert.Equal(t, fecha(2025, time.March, 15), cal[1].FechaFin)
	assert.Equal(t, fecha(2025, time.March, 17), cal[2].FechaInicio)

	assert.Equal(t, "EXAMEN", cal[2].Tipo)
	assert.Equal(t, 3, cal[2].Orden)
}

func TestArmarCalendarioInicioMitadDeSemana(t *testing.T) {
	// 2025-03-05 es miércoles: la primera semana es corta en días hábiles
	// pero el rango sigue siendo inicio+5
	cal := ArmarCalendario(fecha(2025, time.March, 5), semanas(
		model.SemanaCursada, model.SemanaCursada,
	))
	require.Len(t, cal, 2)

	assert.Equal(t, fecha(2025, time.March, 5), cal[0].FechaInicio)
	assert.Equal(t, fecha(2025, time.March, 10), cal[0].FechaFin)

	// el cursor salta dos días después del fin: siempre cae en lunes
	assert.Equal(t, time.Monday, cal[1].FechaInicio.Weekday())
}

func TestArmarCalendarioSaltaDomingo(t *testing.T) {
	// 2025-03-02 es domingo: se corre al lunes 3
	cal := ArmarCalendario(fecha(2025, time.March, 2), semanas(model.SemanaCursada))
	require.Len(t, cal, 1)
	assert.Equal(t, fecha(2025, time.March, 3), cal[0].FechaInicio)
}

func TestArmarCalendarioSinSolapamientos(t *testing.T) {
	cal := ArmarCalendario(fecha(2025, time.March, 3), semanas(
		model.SemanaCursada, model.SemanaReceso, model.SemanaCursada,
		model.SemanaPractica, model.SemanaExamen,
	))
	require.Len(t, cal, 5)

	for i := 1; i < len(cal); i++ {
		assert.True(t, cal[i].FechaInicio.After(cal[i-1].FechaFin),
			"la semana %d se solapa con la anterior", i+1)
	}
}

func TestArmarCalendarioRespetaOrdenConfigurado(t *testing.T) {
	desordenadas := []model.SemanaConfigModel{
		{SemanaConfigOrden: 2, SemanaConfigTipo: model.SemanaExamen},
		{SemanaConfigOrden: 1, SemanaConfigTipo: model.SemanaCursada},
	}
	cal := ArmarCalendario(fecha(2025, time.March, 3), desordenadas)
	require.Len(t, cal, 2)
	assert.Equal(t, "CURSADA", cal[0].Tipo)
	assert.Equal(t, "EXAMEN", cal[1].Tipo)
	assert.True(t, cal[0].FechaInicio.Before(cal[1].FechaInicio))
}
