package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	amodel "academico_backend/internals/features/academico/asistencias/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	dto "academico_backend/internals/features/academico/reportes/dto"
)

const (
	celdaPresente = "Presente"
	celdaAusente  = "Ausente"
	celdaSinDato  = "N/A"
)

// SemanaDeFecha ubica una fecha en la grilla semanal del bloque: la semana 1
// arranca en fechaInicio y cada semana dura 7 días corridos. Las fechas
// anteriores al inicio quedan fuera (semana 0).
func SemanaDeFecha(fecha, fechaInicio time.Time) int {
	if fecha.Before(fechaInicio) {
		return 0
	}
	return int(fecha.Sub(fechaInicio).Hours()/(24*7)) + 1
}

// ArmarHistorialAsistencia pivotea la asistencia por semana calendario. Las
// columnas van de la semana 1 a la última semana con registros de cualquier
// estudiante; las semanas sin registros quedan como N/A. El porcentaje final
// cuenta registro por registro, no semana por semana.
func ArmarHistorialAsistencia(
	estudiantes []emodel.EstudianteModel,
	fechaInicio time.Time,
	asistencias []amodel.AsistenciaModel,
) dto.HistorialPivot {
	type clave struct {
		estudianteID uuid.UUID
		semana       int
	}
	type conteo struct{ total, presentes int }

	porSemana := make(map[clave]*conteo, len(asistencias))
	ultimaSemana := 0
	for _, a := range asistencias {
		semana := SemanaDeFecha(a.AsistenciaFecha, fechaInicio)
		if semana < 1 {
			continue
		}
		if semana > ultimaSemana {
			ultimaSemana = semana
		}
		k := clave{a.AsistenciaEstudianteID, semana}
		acc := porSemana[k]
		if acc == nil {
			acc = &conteo{}
			porSemana[k] = acc
		}
		acc.total++
		if a.AsistenciaPresente {
			acc.presentes++
		}
	}

	headers := make([]string, 0, ultimaSemana+3)
	headers = append(headers, "Estudiante", "DNI")
	for s := 1; s <= ultimaSemana; s++ {
		headers = append(headers, fmt.Sprintf("Semana %d", s))
	}
	headers = append(headers, "% Asistencia")

	rows := make([][]any, 0, len(estudiantes))
	for _, e := range estudiantes {
		row := make([]any, 0, len(headers))
		row = append(row, e.EstudianteApellido+", "+e.EstudianteNombre, e.EstudianteDNI)

		registros, presentes := 0, 0
		for s := 1; s <= ultimaSemana; s++ {
			acc := porSemana[clave{e.EstudianteID, s}]
			switch {
			case acc == nil:
				row = append(row, celdaSinDato)
			case acc.presentes > 0:
				row = append(row, celdaPresente)
			default:
				row = append(row, celdaAusente)
			}
			if acc != nil {
				registros += acc.total
				presentes += acc.presentes
			}
		}

		porcentaje := 0.0
		if registros > 0 {
			porcentaje = float64(presentes) / float64(registros) * 100
		}
		row = append(row, fmt.Sprintf("%.0f%%", porcentaje))
		rows = append(rows, row)
	}

	return dto.HistorialPivot{Headers: headers, Rows: rows}
}
