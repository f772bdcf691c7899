package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "academico_backend/internals/features/academico/asistencias/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
)

func diaUTC(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestSemanaDeFecha(t *testing.T) {
	inicio := diaUTC(2025, time.March, 3) // lunes

	assert.Equal(t, 1, SemanaDeFecha(inicio, inicio))
	assert.Equal(t, 1, SemanaDeFecha(diaUTC(2025, time.March, 9), inicio))
	assert.Equal(t, 2, SemanaDeFecha(diaUTC(2025, time.March, 10), inicio))
	// las fechas anteriores al inicio no caen en la semana 1
	assert.Equal(t, 0, SemanaDeFecha(diaUTC(2025, time.February, 28), inicio))
	assert.Equal(t, 0, SemanaDeFecha(diaUTC(2025, time.March, 2), inicio))
}

func TestArmarHistorialAsistencia(t *testing.T) {
	estudiante := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteNombre:   "Ana",
		EstudianteApellido: "García",
		EstudianteDNI:      "30111222",
	}
	inicio := diaUTC(2025, time.March, 3) // lunes

	asistencias := []amodel.AsistenciaModel{
		// semana 1: presente
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 4), AsistenciaPresente: true},
		// semana 2: ausente
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 12), AsistenciaPresente: false},
		// semana 4: presente — la semana 3 queda como N/A en el medio
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 25), AsistenciaPresente: true},
	}

	pivot := ArmarHistorialAsistencia([]emodel.EstudianteModel{estudiante}, inicio, asistencias)

	assert.Equal(t, []string{"Estudiante", "DNI", "Semana 1", "Semana 2", "Semana 3", "Semana 4", "% Asistencia"}, pivot.Headers)
	require.Len(t, pivot.Rows, 1)
	assert.Equal(t,
		[]any{"García, Ana", "30111222", "Presente", "Ausente", "N/A", "Presente", "67%"},
		pivot.Rows[0])
}

func TestArmarHistorialAsistenciaSinDatos(t *testing.T) {
	estudiante := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteNombre:   "Juan",
		EstudianteApellido: "Pérez",
		EstudianteDNI:      "28000111",
	}

	pivot := ArmarHistorialAsistencia([]emodel.EstudianteModel{estudiante}, diaUTC(2025, time.March, 3), nil)

	// sin registros no hay columnas de semana ni división por cero
	assert.Equal(t, []string{"Estudiante", "DNI", "% Asistencia"}, pivot.Headers)
	require.Len(t, pivot.Rows, 1)
	assert.Equal(t, []any{"Pérez, Juan", "28000111", "0%"}, pivot.Rows[0])
}

func TestArmarHistorialAsistenciaPorcentajePorRegistro(t *testing.T) {
	estudiante := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "López",
		EstudianteNombre:   "Rita",
		EstudianteDNI:      "31222333",
	}
	inicio := diaUTC(2025, time.March, 3)

	// tres registros en la misma semana, uno solo presente: la celda dice
	// Presente pero el porcentaje cuenta registro por registro
	asistencias := []amodel.AsistenciaModel{
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 3), AsistenciaPresente: false},
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 4), AsistenciaPresente: true},
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 5), AsistenciaPresente: false},
	}

	pivot := ArmarHistorialAsistencia([]emodel.EstudianteModel{estudiante}, inicio, asistencias)
	require.Len(t, pivot.Rows, 1)
	assert.Equal(t, "Presente", pivot.Rows[0][2])
	assert.Equal(t, "33%", pivot.Rows[0][3])
}

func TestArmarHistorialAsistenciaIgnoraAnterioresAlInicio(t *testing.T) {
	estudiante := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "Sosa",
		EstudianteNombre:   "Leo",
		EstudianteDNI:      "27555666",
	}
	inicio := diaUTC(2025, time.March, 3)

	asistencias := []amodel.AsistenciaModel{
		// tres días antes del inicio: no es semana 1
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.February, 28), AsistenciaPresente: true},
		// semana 2
		{AsistenciaEstudianteID: estudiante.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 11), AsistenciaPresente: true},
	}

	pivot := ArmarHistorialAsistencia([]emodel.EstudianteModel{estudiante}, inicio, asistencias)

	assert.Equal(t, []string{"Estudiante", "DNI", "Semana 1", "Semana 2", "% Asistencia"}, pivot.Headers)
	require.Len(t, pivot.Rows, 1)
	assert.Equal(t, []any{"Sosa, Leo", "27555666", "N/A", "Presente", "100%"}, pivot.Rows[0])
}

func TestArmarHistorialAsistenciaSemanasDeOtroEstudiante(t *testing.T) {
	conDatos := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "García",
		EstudianteNombre:   "Ana",
		EstudianteDNI:      "30111222",
	}
	sinDatos := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "Pérez",
		EstudianteNombre:   "Juan",
		EstudianteDNI:      "28000111",
	}
	inicio := diaUTC(2025, time.March, 3)

	// la última semana vista entre todos define las columnas de todos
	asistencias := []amodel.AsistenciaModel{
		{AsistenciaEstudianteID: conDatos.EstudianteID, AsistenciaFecha: diaUTC(2025, time.March, 18), AsistenciaPresente: true},
	}

	pivot := ArmarHistorialAsistencia([]emodel.EstudianteModel{conDatos, sinDatos}, inicio, asistencias)

	assert.Equal(t, []string{"Estudiante", "DNI", "Semana 1", "Semana 2", "Semana 3", "% Asistencia"}, pivot.Headers)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, []any{"García, Ana", "30111222", "N/A", "N/A", "Presente", "100%"}, pivot.Rows[0])
	assert.Equal(t, []any{"Pérez, Juan", "28000111", "N/A", "N/A", "N/A", "0%"}, pivot.Rows[1])
}
