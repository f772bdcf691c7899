package service

import (
	"sort"

	"github.com/google/uuid"

	examModel "academico_backend/internals/features/academico/examenes/model"
	dto "academico_backend/internals/features/academico/programas/dto"
	model "academico_backend/internals/features/academico/programas/model"
)

// EstructuraInput junta las filas ya cargadas de cada nivel. El controller
// hace una query por nivel (O(niveles), no O(entidades)) y acá solo se arma
// el árbol en memoria.
type EstructuraInput struct {
	Programa model.ProgramaModel
	Baterias []model.BateriaModel
	Bloques  []model.BloqueModel
	Modulos  []model.ModuloModel
	Examenes []examModel.ExamenModel
	Cohorte  *dto.CohorteResumen
}

// ArmarEstructura arma programa → baterías → bloques → módulos.
// Los módulos llevan sus parciales/recuperatorios; los bloques sus finales
// (orden fecha, id). Cada nivel sale ordenado por su campo orden.
func ArmarEstructura(in EstructuraInput) dto.ProgramaEstructuraResponse {
	examenesPorModulo := make(map[uuid.UUID][]dto.ExamenResumen)
	finalesPorBloque := make(map[uuid.UUID][]dto.ExamenResumen)
	for _, e := range in.Examenes {
		resumen := dto.ExamenResumen{
			ExamenID:    e.ExamenID,
			ExamenTipo:  string(e.ExamenTipo),
			ExamenFecha: e.ExamenFecha,
			ExamenPeso:  e.ExamenPeso,
		}
		switch {
		case e.ExamenBloqueID != nil && e.ExamenTipo.EsFinal():
			finalesPorBloque[*e.ExamenBloqueID] = append(finalesPorBloque[*e.ExamenBloqueID], resumen)
		case e.ExamenModuloID != nil && !e.ExamenTipo.EsFinal():
			examenesPorModulo[*e.ExamenModuloID] = append(examenesPorModulo[*e.ExamenModuloID], resumen)
		}
	}
	for _, grupo := range [2]map[uuid.UUID][]dto.ExamenResumen{examenesPorModulo, finalesPorBloque} {
		for k := range grupo {
			rs := grupo[k]
			sort.Slice(rs, func(i, j int) bool {
				if !rs[i].ExamenFecha.Equal(rs[j].ExamenFecha) {
					return rs[i].ExamenFecha.Before(rs[j].ExamenFecha)
				}
				return rs[i].ExamenID.String() < rs[j].ExamenID.String()
			})
		}
	}

	modulosPorBloque := make(map[uuid.UUID][]dto.ModuloEstructura)
	for _, m := range in.Modulos {
		ex := examenesPorModulo[m.ModuloID]
		if ex == nil {
			ex = []dto.ExamenResumen{}
		}
		modulosPorBloque[m.ModuloBloqueID] = append(modulosPorBloque[m.ModuloBloqueID], dto.ModuloEstructura{
			ModuloID:          m.ModuloID,
			ModuloNombre:      m.ModuloNombre,
			ModuloOrden:       m.ModuloOrden,
			ModuloFechaInicio: m.ModuloFechaInicio,
			ModuloFechaFin:    m.ModuloFechaFin,
			ModuloEsPractica:  m.ModuloEsPractica,
			AsistenciaReqPrac: m.ModuloAsistenciaRequeridaPractica,
			Examenes:          ex,
		})
	}

	bloquesPorBateria := make(map[uuid.UUID][]dto.BloqueEstructura)
	for _, b := range in.Bloques {
		mods := modulosPorBloque[b.BloqueID]
		if mods == nil {
			mods = []dto.ModuloEstructura{}
		}
		sort.Slice(mods, func(i, j int) bool { return mods[i].ModuloOrden < mods[j].ModuloOrden })
		finales := finalesPorBloque[b.BloqueID]
		if finales == nil {
			finales = []dto.ExamenResumen{}
		}
		bloquesPorBateria[b.BloqueBateriaID] = append(bloquesPorBateria[b.BloqueBateriaID], dto.BloqueEstructura{
			BloqueID:        b.BloqueID,
			BloqueNombre:    b.BloqueNombre,
			BloqueOrden:     b.BloqueOrden,
			Modulos:         mods,
			ExamenesFinales: finales,
		})
	}

	baterias := make([]dto.BateriaEstructura, 0, len(in.Baterias))
	for _, bat := range in.Baterias {
		bloques := bloquesPorBateria[bat.BateriaID]
		if bloques == nil {
			bloques = []dto.BloqueEstructura{}
		}
		sort.Slice(bloques, func(i, j int) bool { return bloques[i].BloqueOrden < bloques[j].BloqueOrden })
		baterias = append(baterias, dto.BateriaEstructura{
			BateriaID:     bat.BateriaID,
			BateriaNombre: bat.BateriaNombre,
			BateriaOrden:  bat.BateriaOrden,
			Bloques:       bloques,
		})
	}
	sort.Slice(baterias, func(i, j int) bool { return baterias[i].BateriaOrden < baterias[j].BateriaOrden })

	return dto.ProgramaEstructuraResponse{
		ProgramaID:     in.Programa.ProgramaID,
		ProgramaCodigo: in.Programa.ProgramaCodigo,
		ProgramaNombre: in.Programa.ProgramaNombre,
		ProgramaActivo: in.Programa.ProgramaActivo,
		Baterias:       baterias,
		Cohorte:        in.Cohorte,
	}
}
