package service

import (
	"sort"
	"time"

	model "academico_backend/internals/features/academico/cohortes/model"
)

type SemanaCalendario struct {
	Orden       int       `json:"orden"`
	Tipo        string    `json:"tipo"`
	FechaInicio time.Time `json:"fecha_inicio"`
	FechaFin    time.Time `json:"fecha_fin"`
}

// ArmarCalendario calcula los rangos de fechas de cada semana configurada.
// Las semanas van de lunes a sábado; si el cursor cae en domingo se corre
// al lunes. Después de cada sábado el cursor salta al lunes siguiente.
// La primera semana puede arrancar en cualquier día hábil (la fecha de
// inicio del bloque manda); las siguientes siempre arrancan en lunes.
func ArmarCalendario(fechaInicio time.Time, semanas []model.SemanaConfigModel) []SemanaCalendario {
	ordenadas := make([]model.SemanaConfigModel, len(semanas))
	copy(ordenadas, semanas)
	sort.Slice(ordenadas, func(i, j int) bool {
		return ordenadas[i].SemanaConfigOrden < ordenadas[j].SemanaConfigOrden
	})

	calendario := make([]SemanaCalendario, 0, len(ordenadas))
	cursor := fechaInicio

	for _, semana := range ordenadas {
		for cursor.Weekday() == time.Sunday {
			cursor = cursor.AddDate(0, 0, 1)
		}

		inicio := cursor
		fin := inicio.AddDate(0, 0, 5) // lunes a sábado: 6 días

		calendario = append(calendario, SemanaCalendario{
			Orden:       semana.SemanaConfigOrden,
			Tipo:        string(semana.SemanaConfigTipo),
			FechaInicio: inicio,
			FechaFin:    fin,
		})

		// siguiente lunes
		cursor = fin.AddDate(0, 0, 2)
	}

	return calendario
}
