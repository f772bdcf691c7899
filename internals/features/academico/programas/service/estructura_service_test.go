package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmodel "academico_backend/internals/features/academico/examenes/model"
	model "academico_backend/internals/features/academico/programas/model"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func dia(anio int, mes time.Month, d int) time.Time {
	return time.Date(anio, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestArmarEstructura(t *testing.T) {
	programa := model.ProgramaModel{
		ProgramaID:     uuid.New(),
		ProgramaCodigo: "ENF",
		ProgramaNombre: "Enfermería",
		ProgramaActivo: true,
	}
	bateria2 := model.BateriaModel{BateriaID: uuid.New(), BateriaProgramaID: programa.ProgramaID, BateriaNombre: "Segunda", BateriaOrden: 2}
	bateria1 := model.BateriaModel{BateriaID: uuid.New(), BateriaProgramaID: programa.ProgramaID, BateriaNombre: "Primera", BateriaOrden: 1}
	bloque := model.BloqueModel{BloqueID: uuid.New(), BloqueBateriaID: bateria1.BateriaID, BloqueNombre: "Bloque A", BloqueOrden: 1}
	modulo := model.ModuloModel{ModuloID: uuid.New(), ModuloBloqueID: bloque.BloqueID, ModuloNombre: "Anatomía", ModuloOrden: 1}

	parcial := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenModuloID: ptr(modulo.ModuloID),
		ExamenTipo:     xmodel.TipoParcial,
		ExamenFecha:    dia(2025, time.April, 1),
	}
	recuperatorio := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenModuloID: ptr(modulo.ModuloID),
		ExamenTipo:     xmodel.TipoRecuperatorio,
		ExamenFecha:    dia(2025, time.April, 15),
	}
	final := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenBloqueID: ptr(bloque.BloqueID),
		ExamenTipo:     xmodel.TipoFinalSinc,
		ExamenFecha:    dia(2025, time.May, 1),
	}

	resp := ArmarEstructura(EstructuraInput{
		Programa: programa,
		Baterias: []model.BateriaModel{bateria2, bateria1},
		Bloques:  []model.BloqueModel{bloque},
		Modulos:  []model.ModuloModel{modulo},
		Examenes: []xmodel.ExamenModel{recuperatorio, final, parcial},
	})

	assert.Equal(t, "ENF", resp.ProgramaCodigo)
	require.Len(t, resp.Baterias, 2)
	// ordenadas por orden, no por llegada
	assert.Equal(t, "Primera", resp.Baterias[0].BateriaNombre)
	assert.Equal(t, "Segunda", resp.Baterias[1].BateriaNombre)
	assert.Empty(t, resp.Baterias[1].Bloques)

	require.Len(t, resp.Baterias[0].Bloques, 1)
	bloqueResp := resp.Baterias[0].Bloques[0]

	// el parcial y el recuperatorio cuelgan del módulo, en orden de fecha
	require.Len(t, bloqueResp.Modulos, 1)
	require.Len(t, bloqueResp.Modulos[0].Examenes, 2)
	assert.Equal(t, parcial.ExamenID, bloqueResp.Modulos[0].Examenes[0].ExamenID)
	assert.Equal(t, recuperatorio.ExamenID, bloqueResp.Modulos[0].Examenes[1].ExamenID)

	// el final cuelga del bloque
	require.Len(t, bloqueResp.ExamenesFinales, 1)
	assert.Equal(t, final.ExamenID, bloqueResp.ExamenesFinales[0].ExamenID)
}

func TestArmarEstructuraIgnoraExamenesMalAnclados(t *testing.T) {
	programa := model.ProgramaModel{ProgramaID: uuid.New()}
	bateria := model.BateriaModel{BateriaID: uuid.New(), BateriaProgramaID: programa.ProgramaID, BateriaOrden: 1}
	bloque := model.BloqueModel{BloqueID: uuid.New(), BloqueBateriaID: bateria.BateriaID, BloqueOrden: 1}
	modulo := model.ModuloModel{ModuloID: uuid.New(), ModuloBloqueID: bloque.BloqueID, ModuloOrden: 1}

	// un final colgado de un módulo y un parcial colgado de un bloque no
	// entran en el árbol
	finalEnModulo := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenModuloID: ptr(modulo.ModuloID),
		ExamenTipo:     xmodel.TipoFinalVirtual,
	}
	parcialEnBloque := xmodel.ExamenModel{
		ExamenID:       uuid.New(),
		ExamenBloqueID: ptr(bloque.BloqueID),
		ExamenTipo:     xmodel.TipoParcial,
	}

	resp := ArmarEstructura(EstructuraInput{
		Programa: programa,
		Baterias: []model.BateriaModel{bateria},
		Bloques:  []model.BloqueModel{bloque},
		Modulos:  []model.ModuloModel{modulo},
		Examenes: []xmodel.ExamenModel{finalEnModulo, parcialEnBloque},
	})

	bloqueResp := resp.Baterias[0].Bloques[0]
	assert.Empty(t, bloqueResp.Modulos[0].Examenes)
	assert.Empty(t, bloqueResp.ExamenesFinales)
}
