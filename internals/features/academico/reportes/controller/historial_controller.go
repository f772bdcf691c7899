package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "academico_backend/internals/features/academico/asistencias/model"
	cmodel "academico_backend/internals/features/academico/cohortes/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"
	imodel "academico_backend/internals/features/academico/inscripciones/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
	service "academico_backend/internals/features/academico/reportes/service"
	helper "academico_backend/internals/helpers"
)

type HistorialController struct {
	DB *gorm.DB
}

func NewHistorialController(db *gorm.DB) *HistorialController {
	return &HistorialController{DB: db}
}

/* GET /api/reportes/historial?cohorte=&tipo=notas|asistencia */
func (h *HistorialController) Historial(c *fiber.Ctx) error {
	cohorteID, err := helper.ParseUUIDQuery(c, "cohorte")
	if err != nil {
		return err
	}
	if cohorteID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el parámetro cohorte")
	}

	tipo := strings.TrimSpace(c.Query("tipo"))
	if tipo != "notas" && tipo != "asistencia" {
		return fiber.NewError(fiber.StatusBadRequest, "El parámetro tipo debe ser 'notas' o 'asistencia'")
	}

	var cohorte cmodel.CohorteModel
	if err := h.DB.
		Preload("Programa").
		Preload("BloqueFechas").
		First(&cohorte, "cohorte_id = ?", *cohorteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cohorte no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	estudiantes, err := h.estudiantesDeCohorte(cohorte.CohorteID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if tipo == "notas" {
		return h.historialNotas(c, cohorte, estudiantes)
	}
	return h.historialAsistencia(c, cohorte, estudiantes)
}

func (h *HistorialController) historialNotas(c *fiber.Ctx, cohorte cmodel.CohorteModel, estudiantes []emodel.EstudianteModel) error {
	baterias, bloques, modulos, examenes, err := h.cargarEstructura(cohorte.CohorteProgramaID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	columnas := service.OrdenarColumnasExamen(baterias, bloques, modulos, examenes)

	var notas []xmodel.NotaModel
	if len(estudiantes) > 0 && len(columnas) > 0 {
		estudianteIDs := make([]uuid.UUID, 0, len(estudiantes))
		for _, e := range estudiantes {
			estudianteIDs = append(estudianteIDs, e.EstudianteID)
		}
		examenIDs := make([]uuid.UUID, 0, len(columnas))
		for _, col := range columnas {
			examenIDs = append(examenIDs, col.ExamenID)
		}
		if err := h.DB.
			Where("nota_estudiante_id IN ? AND nota_examen_id IN ?", estudianteIDs, examenIDs).
			Find(&notas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	pivot := service.ArmarHistorialNotas(estudiantes, columnas, notas)
	return helper.JsonOK(c, "", pivot)
}

func (h *HistorialController) historialAsistencia(c *fiber.Ctx, cohorte cmodel.CohorteModel, estudiantes []emodel.EstudianteModel) error {
	if cohorte.BloqueFechas == nil {
		return fiber.NewError(fiber.StatusBadRequest, "La cohorte no tiene bloque de fechas asignado")
	}
	fechaInicio := cohorte.BloqueFechas.BloqueFechasFechaInicio

	// las columnas salen de los registros: hasta la última semana con datos
	var asistencias []amodel.AsistenciaModel
	if len(estudiantes) > 0 {
		estudianteIDs := make([]uuid.UUID, 0, len(estudiantes))
		for _, e := range estudiantes {
			estudianteIDs = append(estudianteIDs, e.EstudianteID)
		}
		if err := h.DB.
			Where("asistencia_estudiante_id IN ? AND asistencia_fecha >= ?",
				estudianteIDs, fechaInicio).
			Find(&asistencias).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	pivot := service.ArmarHistorialAsistencia(estudiantes, fechaInicio, asistencias)
	return helper.JsonOK(c, "", pivot)
}

func (h *HistorialController) estudiantesDeCohorte(cohorteID uuid.UUID) ([]emodel.EstudianteModel, error) {
	var inscripciones []imodel.InscripcionModel
	if err := h.DB.
		Where("inscripcion_cohorte_id = ?", cohorteID).
		Find(&inscripciones).Error; err != nil {
		return nil, err
	}

	visto := make(map[uuid.UUID]bool, len(inscripciones))
	estudianteIDs := make([]uuid.UUID, 0, len(inscripciones))
	for _, i := range inscripciones {
		if !visto[i.InscripcionEstudianteID] {
			visto[i.InscripcionEstudianteID] = true
			estudianteIDs = append(estudianteIDs, i.InscripcionEstudianteID)
		}
	}
	if len(estudianteIDs) == 0 {
		return nil, nil
	}

	var estudiantes []emodel.EstudianteModel
	if err := h.DB.
		Where("estudiante_id IN ?", estudianteIDs).
		Order("estudiante_apellido, estudiante_nombre").
		Find(&estudiantes).Error; err != nil {
		return nil, err
	}
	return estudiantes, nil
}

// cargarEstructura trae el árbol curricular del programa en una consulta
// por nivel.
func (h *HistorialController) cargarEstructura(programaID uuid.UUID) (
	[]pmodel.BateriaModel, []pmodel.BloqueModel, []pmodel.ModuloModel, []xmodel.ExamenModel, error,
) {
	var baterias []pmodel.BateriaModel
	if err := h.DB.Where("bateria_programa_id = ?", programaID).Find(&baterias).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	bateriaIDs := make([]uuid.UUID, 0, len(baterias))
	for _, b := range baterias {
		bateriaIDs = append(bateriaIDs, b.BateriaID)
	}

	var bloques []pmodel.BloqueModel
	if len(bateriaIDs) > 0 {
		if err := h.DB.Where("bloque_bateria_id IN ?", bateriaIDs).Find(&bloques).Error; err != nil {
			return nil, nil, nil, nil, err
		}
	}
	bloqueIDs := make([]uuid.UUID, 0, len(bloques))
	for _, b := range bloques {
		bloqueIDs = append(bloqueIDs, b.BloqueID)
	}

	var modulos []pmodel.ModuloModel
	if len(bloqueIDs) > 0 {
		if err := h.DB.Where("modulo_bloque_id IN ?", bloqueIDs).Find(&modulos).Error; err != nil {
			return nil, nil, nil, nil, err
		}
	}
	moduloIDs := make([]uuid.UUID, 0, len(modulos))
	for _, m := range modulos {
		moduloIDs = append(moduloIDs, m.ModuloID)
	}

	var examenes []xmodel.ExamenModel
	if len(moduloIDs) > 0 || len(bloqueIDs) > 0 {
		q := h.DB.Model(&xmodel.ExamenModel{})
		switch {
		case len(moduloIDs) > 0 && len(bloqueIDs) > 0:
			q = q.Where("examen_modulo_id IN ? OR examen_bloque_id IN ?", moduloIDs, bloqueIDs)
		case len(moduloIDs) > 0:
			q = q.Where("examen_modulo_id IN ?", moduloIDs)
		default:
			q = q.Where("examen_bloque_id IN ?", bloqueIDs)
		}
		if err := q.Find(&examenes).Error; err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return baterias, bloques, modulos, examenes, nil
}
