package service

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "academico_backend/internals/features/academico/importaciones/model"
)

func TestLeerCSV(t *testing.T) {
	archivo := strings.Join([]string{
		"DNI, Cohorte_ID ,fecha",
		"30111222,abc,2025-03-01",
		"28000111,def,",
	}, "\n")

	filas, err := leerCSV(strings.NewReader(archivo))
	require.NoError(t, err)
	require.Len(t, filas, 2)

	// el encabezado se normaliza a minúsculas y sin espacios
	assert.Equal(t, "30111222", filas[0].campo("dni"))
	assert.Equal(t, "abc", filas[0].campo("cohorte_id"))
	assert.Equal(t, "2025-03-01", filas[0].campo("fecha"))

	// la numeración de filas cuenta el encabezado
	assert.Equal(t, 2, filas[0].numero)
	assert.Equal(t, 3, filas[1].numero)
	assert.Empty(t, filas[1].campo("fecha"))
}

func TestLeerCSVVacio(t *testing.T) {
	_, err := leerCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestNuevaCorridaPersisteResumen(t *testing.T) {
	resumen := ResumenImport{
		Creados:  3,
		Omitidos: 1,
		Errores:  []string{"fila 4: no existe estudiante con DNI \"99\""},
	}

	corrida := NuevaCorrida(model.ImportNotas, "notas.csv", resumen)

	assert.Equal(t, model.ImportNotas, corrida.ImportRunTipo)
	assert.Equal(t, "notas.csv", corrida.ImportRunArchivo)
	assert.Equal(t, 3, corrida.ImportRunCreados)
	assert.Len(t, corrida.ImportRunErrores, 1)

	// el jsonb guarda el resumen completo, no queda en null
	require.NotEmpty(t, corrida.ImportRunResumen)
	var persistido ResumenImport
	require.NoError(t, sonic.Unmarshal(corrida.ImportRunResumen, &persistido))
	assert.Equal(t, resumen, persistido)
}

func TestLeerCSVFilaCorta(t *testing.T) {
	// una fila con menos columnas que el encabezado es un error de formato
	archivo := "dni,cohorte_id\n30111222\n"
	_, err := leerCSV(strings.NewReader(archivo))
	assert.Error(t, err)
}
