package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "academico_backend/internals/features/academico/analiticas/dto"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
)

func TestSerieDesercionPorEstadoCuentaPorInscripcion(t *testing.T) {
	marzo := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	abril := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)

	items := []InscripcionDesercion{
		// estudiante de baja con dos inscripciones: pesa dos veces en marzo
		{InscripcionID: uuid.New(), EstudianteBaja: true, FechaBajaEstudiante: marzo},
		{InscripcionID: uuid.New(), EstudianteBaja: true, FechaBajaEstudiante: marzo},
		// inscripción pausada en abril
		{InscripcionID: uuid.New(), Pausada: true, FechaPausa: abril},
		// inscripción sin novedad: no cuenta
		{InscripcionID: uuid.New()},
	}

	serie := SerieDesercionPorEstado(items)
	assert.Equal(t, []dto.SerieMensualItem{
		{Mes: "2025-03", Cantidad: 2},
		{Mes: "2025-04", Cantidad: 1},
	}, serie)
}

func TestSerieDesercionBajaMandaSobrePausa(t *testing.T) {
	marzo := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	mayo := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	// inscripción pausada de un estudiante que después se dio de baja:
	// cuenta una sola vez, en el mes de la baja
	items := []InscripcionDesercion{
		{
			InscripcionID:       uuid.New(),
			EstudianteBaja:      true,
			FechaBajaEstudiante: marzo,
			Pausada:             true,
			FechaPausa:          mayo,
		},
	}

	serie := SerieDesercionPorEstado(items)
	assert.Equal(t, []dto.SerieMensualItem{{Mes: "2025-03", Cantidad: 1}}, serie)
}

func TestDetectarInactivos(t *testing.T) {
	ahora := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	conAsistenciaReciente := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "García", EstudianteNombre: "Ana",
		EstudianteDNI: "1", EstudianteEstatus: emodel.EstatusActivo,
	}
	inactivo := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "Pérez", EstudianteNombre: "Juan",
		EstudianteDNI: "2", EstudianteEstatus: emodel.EstatusActivo,
	}
	nuncaAsistio := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "Sosa", EstudianteNombre: "Leo",
		EstudianteDNI: "3", EstudianteEstatus: emodel.EstatusActivo,
	}
	deBaja := emodel.EstudianteModel{
		EstudianteID: uuid.New(), EstudianteApellido: "Ruiz", EstudianteNombre: "Mar",
		EstudianteDNI: "4", EstudianteEstatus: emodel.EstatusBaja,
	}

	ultimas := map[uuid.UUID]time.Time{
		conAsistenciaReciente.EstudianteID: ahora.AddDate(0, 0, -7),  // hace 1 semana
		inactivo.EstudianteID:              ahora.AddDate(0, 0, -30), // hace más de 3 semanas
	}

	casos := DetectarInactivos(
		[]emodel.EstudianteModel{conAsistenciaReciente, inactivo, nuncaAsistio, deBaja},
		ultimas, ahora, 3, 50,
	)

	require.Len(t, casos, 2)
	assert.Equal(t, inactivo.EstudianteID, casos[0].EstudianteID)
	assert.Equal(t, "2025-05-31", casos[0].UltimaFecha)
	// el que nunca asistió entra sin fecha
	assert.Equal(t, nuncaAsistio.EstudianteID, casos[1].EstudianteID)
	assert.Empty(t, casos[1].UltimaFecha)
}

func TestDetectarInactivosRespetaLimite(t *testing.T) {
	ahora := time.Now()
	estudiantes := make([]emodel.EstudianteModel, 0, 10)
	for i := 0; i < 10; i++ {
		estudiantes = append(estudiantes, emodel.EstudianteModel{
			EstudianteID:      uuid.New(),
			EstudianteEstatus: emodel.EstatusActivo,
		})
	}

	casos := DetectarInactivos(estudiantes, nil, ahora, 3, 4)
	assert.Len(t, casos, 4)
}
