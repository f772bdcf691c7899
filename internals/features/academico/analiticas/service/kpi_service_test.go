package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "academico_backend/internals/features/academico/analiticas/dto"
	amodel "academico_backend/internals/features/academico/asistencias/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"
)

func TestTasaSegura(t *testing.T) {
	// denominador cero: 0, no panic
	assert.Equal(t, 0.0, TasaSegura(5, 0))
	assert.Equal(t, 0.5, TasaSegura(1, 2))
	// en [0,1], redondeada a cuatro decimales
	assert.Equal(t, 0.3333, TasaSegura(1, 3))
	assert.Equal(t, 1.0, TasaSegura(3, 3))
}

func TestPorcentajeSeguro(t *testing.T) {
	assert.Equal(t, 0.0, PorcentajeSeguro(5, 0))
	assert.Equal(t, 50.0, PorcentajeSeguro(1, 2))
	assert.Equal(t, 33.33, PorcentajeSeguro(1, 3))
}

func TestTasasAprobacionPorTipo(t *testing.T) {
	parcial := uuid.New()
	final := uuid.New()
	tipos := map[uuid.UUID]xmodel.TipoExamen{
		parcial: xmodel.TipoParcial,
		final:   xmodel.TipoFinalVirtual,
	}

	notas := []xmodel.NotaModel{
		{NotaExamenID: parcial, NotaAprobado: true},
		{NotaExamenID: parcial, NotaAprobado: false},
		{NotaExamenID: final, NotaAprobado: true},
	}

	items := TasasAprobacionPorTipo(notas, tipos)
	require.Len(t, items, 2)
	// orden alfabético por tipo
	assert.Equal(t, "FINAL_VIRTUAL", items[0].Tipo)
	assert.Equal(t, 1.0, items[0].Tasa)
	assert.Equal(t, "PARCIAL", items[1].Tipo)
	assert.Equal(t, 0.5, items[1].Tasa)
}

func TestHistogramaCalificaciones(t *testing.T) {
	notas := []xmodel.NotaModel{
		{NotaCalificacion: 7},
		{NotaCalificacion: 7},
		{NotaCalificacion: 10},
		{NotaCalificacion: 42}, // fuera de escala: se ignora
	}

	items := HistogramaCalificaciones(notas)
	require.Len(t, items, 11)
	assert.Equal(t, 0, items[0].Calificacion)
	assert.Equal(t, 2, items[7].Cantidad)
	assert.Equal(t, 1, items[10].Cantidad)
	assert.Equal(t, 0, items[3].Cantidad)
}

func TestAgruparAsistencia(t *testing.T) {
	modA := uuid.New()
	modB := uuid.New()
	nombres := map[uuid.UUID]string{modA: "Anatomía", modB: "Fisiología"}

	asistencias := []amodel.AsistenciaModel{
		{AsistenciaModuloID: modA, AsistenciaPresente: true},
		{AsistenciaModuloID: modA, AsistenciaPresente: false},
		{AsistenciaModuloID: modB, AsistenciaPresente: true},
	}

	items := AgruparAsistencia(asistencias, func(a amodel.AsistenciaModel) string {
		return nombres[a.AsistenciaModuloID]
	})

	require.Len(t, items, 2)
	assert.Equal(t, "Anatomía", items[0].Clave)
	assert.Equal(t, 0.5, items[0].Tasa)
	assert.Equal(t, "Fisiología", items[1].Clave)
	assert.Equal(t, 1.0, items[1].Tasa)
}

func TestResumirAsistencia(t *testing.T) {
	asistencias := []amodel.AsistenciaModel{
		{AsistenciaPresente: true},
		{AsistenciaPresente: false},
		{AsistenciaPresente: true},
		{AsistenciaPresente: true},
	}

	total, presentes, tasa := ResumirAsistencia(asistencias)
	assert.Equal(t, 4, total)
	assert.Equal(t, 3, presentes)
	assert.Equal(t, 0.75, tasa)

	total, presentes, tasa = ResumirAsistencia(nil)
	assert.Zero(t, total)
	assert.Zero(t, presentes)
	assert.Equal(t, 0.0, tasa)
}

func TestDetectarAlertas(t *testing.T) {
	riesgo := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "García", EstudianteNombre: "Ana",
		EstudianteDNI: "1", EstudianteEstatus: emodel.EstatusActivo,
	}
	sano := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "Pérez", EstudianteNombre: "Juan",
		EstudianteDNI: "2", EstudianteEstatus: emodel.EstatusActivo,
	}
	deBaja := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "Ruiz", EstudianteNombre: "Mar",
		EstudianteDNI: "3", EstudianteEstatus: emodel.EstatusBaja,
	}

	asistencia := map[uuid.UUID]dto.TasaAsistenciaItem{
		riesgo.EstudianteID: {Tasa: 0.4},
		sano.EstudianteID:   {Tasa: 0.95},
		deBaja.EstudianteID: {Tasa: 0.1},
	}
	pendientes := map[uuid.UUID]int{
		riesgo.EstudianteID: 2,
	}

	alertas := DetectarAlertas([]emodel.EstudianteModel{riesgo, sano, deBaja}, asistencia, pendientes)

	require.Len(t, alertas, 1)
	assert.Equal(t, riesgo.EstudianteID, alertas[0].EstudianteID)
	assert.Len(t, alertas[0].Motivos, 2)
}
