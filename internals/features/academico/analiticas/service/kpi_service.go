package service

import (
	"math"
	"sort"

	dto "academico_backend/internals/features/academico/analiticas/dto"
	amodel "academico_backend/internals/features/academico/asistencias/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"

	"github.com/google/uuid"
)

// umbral de asistencia bajo el cual un estudiante dispara alerta
const UmbralAsistenciaAlerta = 0.7

// TasaSegura devuelve parte/total en [0,1] evitando la división por cero:
// sin datos, 0.
func TasaSegura(parte, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(parte)/float64(total)*10000) / 10000
}

// PorcentajeSeguro es la variante 0-100 con dos decimales que usa el
// dashboard.
func PorcentajeSeguro(parte, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(parte)/float64(total)*10000) / 100
}

// TasasAprobacionPorTipo agrupa las notas por tipo de examen y calcula la
// tasa de aprobación de cada tipo.
func TasasAprobacionPorTipo(notas []xmodel.NotaModel, tipoPorExamen map[uuid.UUID]xmodel.TipoExamen) []dto.TasaAprobacionItem {
	type acumulado struct{ total, aprobadas int }
	porTipo := map[string]*acumulado{}
	for _, n := range notas {
		tipo, ok := tipoPorExamen[n.NotaExamenID]
		if !ok {
			continue
		}
		acc := porTipo[string(tipo)]
		if acc == nil {
			acc = &acumulado{}
			porTipo[string(tipo)] = acc
		}
		acc.total++
		if n.NotaAprobado {
			acc.aprobadas++
		}
	}

	items := make([]dto.TasaAprobacionItem, 0, len(porTipo))
	for tipo, acc := range porTipo {
		items = append(items, dto.TasaAprobacionItem{
			Tipo:      tipo,
			Total:     acc.total,
			Aprobadas: acc.aprobadas,
			Tasa:      TasaSegura(acc.aprobadas, acc.total),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Tipo < items[j].Tipo })
	return items
}

// HistogramaCalificaciones cuenta notas por calificación 0..10. Las once
// posiciones siempre están presentes, aunque valgan cero.
func HistogramaCalificaciones(notas []xmodel.NotaModel) []dto.HistogramaItem {
	conteo := make([]int, 11)
	for _, n := range notas {
		if n.NotaCalificacion >= 0 && n.NotaCalificacion <= 10 {
			conteo[n.NotaCalificacion]++
		}
	}
	items := make([]dto.HistogramaItem, 0, 11)
	for calificacion, cantidad := range conteo {
		items = append(items, dto.HistogramaItem{Calificacion: calificacion, Cantidad: cantidad})
	}
	return items
}

// AgruparAsistencia calcula la tasa de presentismo por clave arbitraria
// (nombre de módulo, número de semana, etc.). Los registros con clave vacía
// quedan fuera de los grupos.
func AgruparAsistencia(asistencias []amodel.AsistenciaModel, clavePor func(amodel.AsistenciaModel) string) []dto.TasaAsistenciaItem {
	type acumulado struct{ total, presentes int }
	porClave := map[string]*acumulado{}
	for _, a := range asistencias {
		clave := clavePor(a)
		if clave == "" {
			continue
		}
		acc := porClave[clave]
		if acc == nil {
			acc = &acumulado{}
			porClave[clave] = acc
		}
		acc.total++
		if a.AsistenciaPresente {
			acc.presentes++
		}
	}

	items := make([]dto.TasaAsistenciaItem, 0, len(porClave))
	for clave, acc := range porClave {
		items = append(items, dto.TasaAsistenciaItem{
			Clave:     clave,
			Total:     acc.total,
			Presentes: acc.presentes,
			Tasa:      TasaSegura(acc.presentes, acc.total),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Clave < items[j].Clave })
	return items
}

// ResumirAsistencia arma el agregado global sobre todos los registros.
func ResumirAsistencia(asistencias []amodel.AsistenciaModel) (total, presentes int, tasa float64) {
	for _, a := range asistencias {
		total++
		if a.AsistenciaPresente {
			presentes++
		}
	}
	return total, presentes, TasaSegura(presentes, total)
}

// DetectarAlertas cruza presentismo y finales adeudados por estudiante.
// Un estudiante puede acumular más de un motivo.
func DetectarAlertas(
	estudiantes []emodel.EstudianteModel,
	asistencia map[uuid.UUID]dto.TasaAsistenciaItem,
	finalesPendientes map[uuid.UUID]int,
) []dto.AlertaItem {
	alertas := make([]dto.AlertaItem, 0)
	for _, e := range estudiantes {
		if e.EstudianteEstatus != emodel.EstatusActivo {
			continue
		}

		var motivos []string
		if tasa, ok := asistencia[e.EstudianteID]; ok && tasa.Tasa < UmbralAsistenciaAlerta {
			motivos = append(motivos, "asistencia por debajo del 70%")
		}
		if pendientes := finalesPendientes[e.EstudianteID]; pendientes > 0 {
			motivos = append(motivos, "finales pendientes")
		}
		if len(motivos) == 0 {
			continue
		}

		alertas = append(alertas, dto.AlertaItem{
			EstudianteID: e.EstudianteID,
			Nombre:       e.EstudianteApellido + ", " + e.EstudianteNombre,
			DNI:          e.EstudianteDNI,
			Motivos:      motivos,
		})
	}
	return alertas
}
