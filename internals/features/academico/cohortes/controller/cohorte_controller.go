package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/cohortes/dto"
	model "academico_backend/internals/features/academico/cohortes/model"
	helper "academico_backend/internals/helpers"
)

type CohorteController struct {
	DB *gorm.DB
}

func NewCohorteController(db *gorm.DB) *CohorteController {
	return &CohorteController{DB: db}
}

/* GET /api/cohortes */
func (h *CohorteController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.CohorteModel{}).
		Preload("Programa").Preload("BloqueFechas").Preload("BloqueFechas.SemanasConfig")
	if programaID, err := helper.ParseUUIDQuery(c, "programa"); err != nil {
		return err
	} else if programaID != nil {
		q = q.Where("cohorte_programa_id = ?", *programaID)
	}
	if bloqueFechasID, err := helper.ParseUUIDQuery(c, "bloque_fechas"); err != nil {
		return err
	} else if bloqueFechasID != nil {
		q = q.Where("cohorte_bloque_fechas_id = ?", *bloqueFechasID)
	}

	var rows []model.CohorteModel
	if err := q.Order("cohorte_nombre").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromCohorteModels(rows), nil)
}

/* GET /api/cohortes/:id */
func (h *CohorteController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.CohorteModel
	if err := h.DB.
		Preload("Programa").Preload("BloqueFechas").Preload("BloqueFechas.SemanasConfig").
		First(&m, "cohorte_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cohorte no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromCohorteModel(m))
}

/* POST /api/cohortes */
func (h *CohorteController) Create(c *fiber.Ctx) error {
	var req dto.CreateCohorteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Cohorte creada", dto.FromCohorteModel(m))
}

/* PUT /api/cohortes/:id */
func (h *CohorteController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCohorteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CohorteModel
	if err := h.DB.First(&m, "cohorte_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cohorte no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Cohorte actualizada", dto.FromCohorteModel(m))
}

/* DELETE /api/cohortes/:id */
func (h *CohorteController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.CohorteModel{}, "cohorte_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cohorte no encontrada")
	}
	return helper.JsonDeleted(c, "Cohorte eliminada", fiber.Map{"cohorte_id": id})
}
