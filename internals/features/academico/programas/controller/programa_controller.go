package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "academico_backend/internals/features/academico/examenes/model"
	dto "academico_backend/internals/features/academico/programas/dto"
	model "academico_backend/internals/features/academico/programas/model"
	service "academico_backend/internals/features/academico/programas/service"
	helper "academico_backend/internals/helpers"
)

type ProgramaController struct {
	DB *gorm.DB
}

func NewProgramaController(db *gorm.DB) *ProgramaController {
	return &ProgramaController{DB: db}
}

/* GET /api/programas */
func (h *ProgramaController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ProgramaModel{})
	if activo := strings.TrimSpace(c.Query("activo")); activo != "" {
		q = q.Where("programa_activo = ?", activo == "true")
	}
	if codigo := strings.TrimSpace(c.Query("codigo")); codigo != "" {
		q = q.Where("programa_codigo = ?", codigo)
	}

	var rows []model.ProgramaModel
	if err := q.Order("programa_codigo").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromProgramaModels(rows), nil)
}

/* GET /api/programas/:id — detalle con árbol completo */
func (h *ProgramaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	in, err := h.cargarEstructura(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", service.ArmarEstructura(*in))
}

/* POST /api/programas */
func (h *ProgramaController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un programa con ese código")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Programa creado", dto.FromProgramaModel(m))
}

/* PUT /api/programas/:id */
func (h *ProgramaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProgramaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.ProgramaModel
	if err := h.DB.First(&m, "programa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Programa no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un programa con ese código")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Programa actualizado", dto.FromProgramaModel(m))
}

/* DELETE /api/programas/:id */
func (h *ProgramaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.ProgramaModel{}, "programa_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Programa no encontrado")
	}
	return helper.JsonDeleted(c, "Programa eliminado", fiber.Map{"programa_id": id})
}

/* ==========================================================
   Carga batcheada del árbol: una query por nivel.
========================================================== */
func (h *ProgramaController) cargarEstructura(programaID uuid.UUID) (*service.EstructuraInput, error) {
	var programa model.ProgramaModel
	if err := h.DB.First(&programa, "programa_id = ?", programaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Programa no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var baterias []model.BateriaModel
	if err := h.DB.Where("bateria_programa_id = ?", programaID).Find(&baterias).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	bateriaIDs := make([]uuid.UUID, 0, len(baterias))
	for _, b := range baterias {
		bateriaIDs = append(bateriaIDs, b.BateriaID)
	}

	var bloques []model.BloqueModel
	if len(bateriaIDs) > 0 {
		if err := h.DB.Where("bloque_bateria_id IN ?", bateriaIDs).Find(&bloques).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	bloqueIDs := make([]uuid.UUID, 0, len(bloques))
	for _, b := range bloques {
		bloqueIDs = append(bloqueIDs, b.BloqueID)
	}

	var modulos []model.ModuloModel
	if len(bloqueIDs) > 0 {
		if err := h.DB.Where("modulo_bloque_id IN ?", bloqueIDs).Find(&modulos).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	moduloIDs := make([]uuid.UUID, 0, len(modulos))
	for _, m := range modulos {
		moduloIDs = append(moduloIDs, m.ModuloID)
	}

	var examenes []examModel.ExamenModel
	if len(bloqueIDs) > 0 || len(moduloIDs) > 0 {
		q := h.DB.Model(&examModel.ExamenModel{})
		switch {
		case len(moduloIDs) > 0 && len(bloqueIDs) > 0:
			q = q.Where("examen_modulo_id IN ? OR examen_bloque_id IN ?", moduloIDs, bloqueIDs)
		case len(moduloIDs) > 0:
			q = q.Where("examen_modulo_id IN ?", moduloIDs)
		default:
			q = q.Where("examen_bloque_id IN ?", bloqueIDs)
		}
		if err := q.Find(&examenes).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return &service.EstructuraInput{
		Programa: programa,
		Baterias: baterias,
		Bloques:  bloques,
		Modulos:  modulos,
		Examenes: examenes,
	}, nil
}
