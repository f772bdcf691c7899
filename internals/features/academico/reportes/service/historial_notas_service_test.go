package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emodel "academico_backend/internals/features/academico/estudiantes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func TestOrdenarColumnasExamen(t *testing.T) {
	bateria := pmodel.BateriaModel{BateriaID: uuid.New(), BateriaOrden: 1}
	bloque := pmodel.BloqueModel{
		BloqueID:        uuid.New(),
		BloqueBateriaID: bateria.BateriaID,
		BloqueNombre:    "Bloque Inicial",
		BloqueOrden:     1,
	}
	modulo1 := pmodel.ModuloModel{
		ModuloID:       uuid.New(),
		ModuloBloqueID: bloque.BloqueID,
		ModuloNombre:   "Anatomía",
		ModuloOrden:    1,
	}
	modulo2 := pmodel.ModuloModel{
		ModuloID:       uuid.New(),
		ModuloBloqueID: bloque.BloqueID,
		ModuloNombre:   "Fisiología",
		ModuloOrden:    2,
	}

	parcial1 := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenModuloID: ptr(modulo1.ModuloID),
		ExamenTipo:     xmodel.TipoParcial,
		ExamenFecha:    diaUTC(2025, time.April, 10),
	}
	parcial2 := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenModuloID: ptr(modulo2.ModuloID),
		ExamenTipo:     xmodel.TipoParcial,
		ExamenFecha:    diaUTC(2025, time.March, 1), // más temprano pero módulo posterior
	}
	final := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenBloqueID: ptr(bloque.BloqueID),
		ExamenTipo:     xmodel.TipoFinalVirtual,
		ExamenFecha:    diaUTC(2025, time.February, 1), // fecha temprana pero cierra el bloque
	}

	columnas := OrdenarColumnasExamen(
		[]pmodel.BateriaModel{bateria},
		[]pmodel.BloqueModel{bloque},
		[]pmodel.ModuloModel{modulo1, modulo2},
		[]xmodel.ExamenModel{final, parcial2, parcial1},
	)

	require.Len(t, columnas, 3)
	// el orden curricular manda sobre la fecha
	assert.Equal(t, parcial1.ExamenID, columnas[0].ExamenID)
	assert.Equal(t, parcial2.ExamenID, columnas[1].ExamenID)
	assert.Equal(t, final.ExamenID, columnas[2].ExamenID)

	assert.Equal(t, "Parcial Anatomía", columnas[0].Etiqueta)
	assert.Equal(t, "Parcial Fisiología", columnas[1].Etiqueta)
	assert.Equal(t, "Final Virtual Bloque Inicial", columnas[2].Etiqueta)
}

func TestArmarHistorialNotas(t *testing.T) {
	estudiante1 := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "García",
		EstudianteNombre:   "Ana",
		EstudianteDNI:      "30111222",
	}
	estudiante2 := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "Pérez",
		EstudianteNombre:   "Juan",
		EstudianteDNI:      "28000111",
	}

	examenA := uuid.New()
	examenB := uuid.New()
	columnas := []ExamenColumna{
		{ExamenID: examenA, Etiqueta: "Parcial Anatomía"},
		{ExamenID: examenB, Etiqueta: "Final Virtual Bloque Inicial"},
	}

	notas := []xmodel.NotaModel{
		{NotaEstudianteID: estudiante1.EstudianteID, NotaExamenID: examenA, NotaCalificacion: 7, NotaAprobado: true},
		{NotaEstudianteID: estudiante1.EstudianteID, NotaExamenID: examenB, NotaCalificacion: 9, NotaAprobado: true},
		// estudiante2 solo rindió el parcial
		{NotaEstudianteID: estudiante2.EstudianteID, NotaExamenID: examenA, NotaCalificacion: 4, NotaAprobado: false},
	}

	pivot := ArmarHistorialNotas([]emodel.EstudianteModel{estudiante1, estudiante2}, columnas, notas)

	assert.Equal(t, []string{"Estudiante", "DNI", "Parcial Anatomía", "Final Virtual Bloque Inicial"}, pivot.Headers)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, []any{"García, Ana", "30111222", "7", "9"}, pivot.Rows[0])
	// sin nota para el final: celda null
	assert.Equal(t, []any{"Pérez, Juan", "28000111", "4", nil}, pivot.Rows[1])
}

func TestArmarHistorialNotasGanaLaAprobada(t *testing.T) {
	estudiante := emodel.EstudianteModel{
		EstudianteID:       uuid.New(),
		EstudianteApellido: "Sosa",
		EstudianteNombre:   "Leo",
		EstudianteDNI:      "27555666",
	}
	examen := uuid.New()
	columnas := []ExamenColumna{{ExamenID: examen, Etiqueta: "Parcial X"}}

	notas := []xmodel.NotaModel{
		{NotaEstudianteID: estudiante.EstudianteID, NotaExamenID: examen, NotaCalificacion: 9, NotaAprobado: false},
		{NotaEstudianteID: estudiante.EstudianteID, NotaExamenID: examen, NotaCalificacion: 6, NotaAprobado: true},
	}

	pivot := ArmarHistorialNotas([]emodel.EstudianteModel{estudiante}, columnas, notas)
	require.Len(t, pivot.Rows, 1)
	assert.Equal(t, "6", pivot.Rows[0][2])
}
