package service

import (
	dto "academico_backend/internals/features/academico/analiticas/dto"
	emodel "academico_backend/internals/features/academico/estudiantes/model"

	"github.com/google/uuid"
)

// DetectarGraduados devuelve los estudiantes que aprobaron el final de
// todos los bloques del programa. Un programa sin bloques no gradúa a
// nadie. El resultado se corta en limite casos.
func DetectarGraduados(
	estudiantes []emodel.EstudianteModel,
	totalBloques int,
	bloquesAprobados map[uuid.UUID]int,
	limite int,
) []dto.GraduadoItem {
	graduados := make([]dto.GraduadoItem, 0)
	if totalBloques == 0 {
		return graduados
	}

	for _, e := range estudiantes {
		aprobados := bloquesAprobados[e.EstudianteID]
		if aprobados < totalBloques {
			continue
		}
		graduados = append(graduados, dto.GraduadoItem{
			EstudianteID:     e.EstudianteID,
			Nombre:           e.EstudianteApellido + ", " + e.EstudianteNombre,
			DNI:              e.EstudianteDNI,
			BloquesAprobados: aprobados,
		})
		if len(graduados) >= limite {
			break
		}
	}
	return graduados
}
