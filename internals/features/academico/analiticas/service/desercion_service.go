package service

import (
	"sort"
	"time"

	dto "academico_backend/internals/features/academico/analiticas/dto"
	emodel "academico_backend/internals/features/academico/estudiantes/model"

	"github.com/google/uuid"
)

// InscripcionDesercion es lo mínimo de una inscripción que hace falta para
// la regla por estado. La fecha de baja del estudiante manda sobre la de
// pausa: si el estudiante se dio de baja, todas sus inscripciones caen en
// el mes de esa baja.
type InscripcionDesercion struct {
	InscripcionID       uuid.UUID
	EstudianteBaja      bool
	FechaBajaEstudiante time.Time
	Pausada             bool
	FechaPausa          time.Time
}

// SerieDesercionPorEstado cuenta deserciones por mes. Se cuenta por
// inscripción, no por estudiante: un estudiante de baja con dos cohortes
// pesa dos veces, que es lo que ve secretaría al armar los cupos.
func SerieDesercionPorEstado(items []InscripcionDesercion) []dto.SerieMensualItem {
	porMes := map[string]int{}
	for _, it := range items {
		switch {
		case it.EstudianteBaja:
			porMes[it.FechaBajaEstudiante.Format("2006-01")]++
		case it.Pausada:
			porMes[it.FechaPausa.Format("2006-01")]++
		}
	}

	serie := make([]dto.SerieMensualItem, 0, len(porMes))
	for mes, cantidad := range porMes {
		serie = append(serie, dto.SerieMensualItem{Mes: mes, Cantidad: cantidad})
	}
	sort.Slice(serie, func(i, j int) bool { return serie[i].Mes < serie[j].Mes })
	return serie
}

// DetectarInactivos lista estudiantes activos sin asistencia registrada en
// las últimas N semanas. Los que nunca registraron asistencia también
// entran. El resultado se corta en limite casos.
func DetectarInactivos(
	estudiantes []emodel.EstudianteModel,
	ultimaAsistencia map[uuid.UUID]time.Time,
	ahora time.Time,
	semanas int,
	limite int,
) []dto.DesercionCaso {
	corte := ahora.AddDate(0, 0, -semanas*7)

	casos := make([]dto.DesercionCaso, 0)
	for _, e := range estudiantes {
		if e.EstudianteEstatus != emodel.EstatusActivo {
			continue
		}
		ultima, tiene := ultimaAsistencia[e.EstudianteID]
		if tiene && !ultima.Before(corte) {
			continue
		}

		caso := dto.DesercionCaso{
			EstudianteID: e.EstudianteID,
			Nombre:       e.EstudianteApellido + ", " + e.EstudianteNombre,
			DNI:          e.EstudianteDNI,
		}
		if tiene {
			caso.UltimaFecha = ultima.Format("2006-01-02")
		}
		casos = append(casos, caso)
		if len(casos) >= limite {
			break
		}
	}
	return casos
}
