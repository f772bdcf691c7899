package service

import (
	"sort"
	"strconv"

	"github.com/google/uuid"

	emodel "academico_backend/internals/features/academico/estudiantes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
	dto "academico_backend/internals/features/academico/reportes/dto"
)

// ExamenColumna es una columna del historial de notas ya ordenada.
type ExamenColumna struct {
	ExamenID uuid.UUID
	Etiqueta string
}

var etiquetaTipo = map[xmodel.TipoExamen]string{
	xmodel.TipoParcial:       "Parcial",
	xmodel.TipoRecuperatorio: "Recuperatorio",
	xmodel.TipoFinalVirtual:  "Final Virtual",
	xmodel.TipoFinalSinc:     "Final Sincrónico",
	xmodel.TipoEquivalencia:  "Equivalencia",
}

// OrdenarColumnasExamen ordena los exámenes del programa siguiendo el
// recorrido curricular (batería, bloque, módulo) y dentro de cada nivel por
// fecha. La etiqueta combina el tipo con el nombre del módulo o bloque.
func OrdenarColumnasExamen(
	baterias []pmodel.BateriaModel,
	bloques []pmodel.BloqueModel,
	modulos []pmodel.ModuloModel,
	examenes []xmodel.ExamenModel,
) []ExamenColumna {
	bateriaOrden := make(map[uuid.UUID]int, len(baterias))
	for _, b := range baterias {
		bateriaOrden[b.BateriaID] = b.BateriaOrden
	}

	type bloqueInfo struct {
		nombre       string
		orden        int
		bateriaOrden int
	}
	bloquePorID := make(map[uuid.UUID]bloqueInfo, len(bloques))
	for _, b := range bloques {
		bloquePorID[b.BloqueID] = bloqueInfo{
			nombre:       b.BloqueNombre,
			orden:        b.BloqueOrden,
			bateriaOrden: bateriaOrden[b.BloqueBateriaID],
		}
	}

	type moduloInfo struct {
		nombre   string
		orden    int
		bloqueID uuid.UUID
	}
	moduloPorID := make(map[uuid.UUID]moduloInfo, len(modulos))
	for _, m := range modulos {
		moduloPorID[m.ModuloID] = moduloInfo{
			nombre:   m.ModuloNombre,
			orden:    m.ModuloOrden,
			bloqueID: m.ModuloBloqueID,
		}
	}

	type columnaOrdenable struct {
		col   ExamenColumna
		clave [5]int64 // batería, bloque, módulo, fecha, desempate
	}
	cols := make([]columnaOrdenable, 0, len(examenes))
	for i, e := range examenes {
		var (
			etiquetaNombre string
			bloque         bloqueInfo
			moduloOrden    int
		)
		switch {
		case e.ExamenModuloID != nil:
			mi, ok := moduloPorID[*e.ExamenModuloID]
			if !ok {
				continue
			}
			etiquetaNombre = mi.nombre
			bloque = bloquePorID[mi.bloqueID]
			moduloOrden = mi.orden
		case e.ExamenBloqueID != nil:
			bi, ok := bloquePorID[*e.ExamenBloqueID]
			if !ok {
				continue
			}
			etiquetaNombre = bi.nombre
			bloque = bi
			// los finales cierran el bloque, van después de todos sus módulos
			moduloOrden = 1 << 30
		default:
			continue
		}

		cols = append(cols, columnaOrdenable{
			col: ExamenColumna{
				ExamenID: e.ExamenID,
				Etiqueta: etiquetaTipo[e.ExamenTipo] + " " + etiquetaNombre,
			},
			clave: [5]int64{
				int64(bloque.bateriaOrden),
				int64(bloque.orden),
				int64(moduloOrden),
				e.ExamenFecha.Unix(),
				int64(i),
			},
		})
	}

	sort.Slice(cols, func(i, j int) bool {
		for k := 0; k < len(cols[i].clave); k++ {
			if cols[i].clave[k] != cols[j].clave[k] {
				return cols[i].clave[k] < cols[j].clave[k]
			}
		}
		return false
	})

	out := make([]ExamenColumna, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.col)
	}
	return out
}

// ArmarHistorialNotas pivotea las notas: una fila por estudiante, una columna
// por examen. Celda null si el estudiante no rindió ese examen; si tiene más
// de una nota gana la aprobada y, a igualdad, la de mayor calificación.
func ArmarHistorialNotas(
	estudiantes []emodel.EstudianteModel,
	columnas []ExamenColumna,
	notas []xmodel.NotaModel,
) dto.HistorialPivot {
	type clave struct {
		estudianteID uuid.UUID
		examenID     uuid.UUID
	}
	mejor := make(map[clave]xmodel.NotaModel, len(notas))
	for _, n := range notas {
		k := clave{n.NotaEstudianteID, n.NotaExamenID}
		actual, ok := mejor[k]
		if !ok {
			mejor[k] = n
			continue
		}
		if (n.NotaAprobado && !actual.NotaAprobado) ||
			(n.NotaAprobado == actual.NotaAprobado && n.NotaCalificacion > actual.NotaCalificacion) {
			mejor[k] = n
		}
	}

	headers := make([]string, 0, len(columnas)+2)
	headers = append(headers, "Estudiante", "DNI")
	for _, c := range columnas {
		headers = append(headers, c.Etiqueta)
	}

	rows := make([][]any, 0, len(estudiantes))
	for _, e := range estudiantes {
		row := make([]any, 0, len(headers))
		row = append(row, e.EstudianteApellido+", "+e.EstudianteNombre, e.EstudianteDNI)
		for _, c := range columnas {
			if n, ok := mejor[clave{e.EstudianteID, c.ExamenID}]; ok {
				row = append(row, strconv.Itoa(n.NotaCalificacion))
			} else {
				// sin nota para ese par: null, no string vacío
				row = append(row, nil)
			}
		}
		rows = append(rows, row)
	}

	return dto.HistorialPivot{Headers: headers, Rows: rows}
}
