package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emodel "academico_backend/internals/features/academico/estudiantes/model"
)

func estudianteDePrueba(apellido, dni string) emodel.EstudianteModel {
	return emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: apellido,
		EstudianteNombre:   "X",
		EstudianteDNI:      dni,
		EstudianteEstatus:  emodel.EstatusActivo,
	}
}

func TestDetectarGraduados(t *testing.T) {
	completo := estudianteDePrueba("García", "1")
	incompleto := estudianteDePrueba("Pérez", "2")

	graduados := DetectarGraduados(
		[]emodel.EstudianteModel{completo, incompleto},
		2,
		map[uuid.UUID]int{
			completo.EstudianteID:   2,
			incompleto.EstudianteID: 1,
		},
		100,
	)

	require.Len(t, graduados, 1)
	assert.Equal(t, completo.EstudianteID, graduados[0].EstudianteID)
	assert.Equal(t, 2, graduados[0].BloquesAprobados)
}

func TestDetectarGraduadosProgramaSinBloques(t *testing.T) {
	e := estudianteDePrueba("García", "1")

	// un programa vacío no gradúa a nadie, aunque no haya nada que aprobar
	graduados := DetectarGraduados(
		[]emodel.EstudianteModel{e}, 0,
		map[uuid.UUID]int{e.EstudianteID: 0}, 100,
	)
	assert.Empty(t, graduados)
}

func TestDetectarGraduadosUnSoloBloque(t *testing.T) {
	e := estudianteDePrueba("García", "1")

	graduados := DetectarGraduados(
		[]emodel.EstudianteModel{e}, 1,
		map[uuid.UUID]int{e.EstudianteID: 1}, 100,
	)
	assert.Len(t, graduados, 1)
}

func TestDetectarGraduadosRespetaLimite(t *testing.T) {
	estudiantes := make([]emodel.EstudianteModel, 0, 5)
	aprobados := map[uuid.UUID]int{}
	for i := 0; i < 5; i++ {
		e := estudianteDePrueba("A", "1")
		estudiantes = append(estudiantes, e)
		aprobados[e.EstudianteID] = 1
	}

	graduados := DetectarGraduados(estudiantes, 1, aprobados, 3)
	assert.Len(t, graduados, 3)
}
