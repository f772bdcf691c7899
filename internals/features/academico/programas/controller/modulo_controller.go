package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/programas/dto"
	model "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

type ModuloController struct {
	DB *gorm.DB
}

func NewModuloController(db *gorm.DB) *ModuloController {
	return &ModuloController{DB: db}
}

/* GET /api/modulos */
func (h *ModuloController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ModuloModel{})
	if bloqueID, err := helper.ParseUUIDQuery(c, "bloque"); err != nil {
		return err
	} else if bloqueID != nil {
		q = q.Where("modulo_bloque_id = ?", *bloqueID)
	}
	if esPractica := strings.TrimSpace(c.Query("es_practica")); esPractica != "" {
		q = q.Where("modulo_es_practica = ?", esPractica == "true")
	}

	var rows []model.ModuloModel
	if err := q.Order("modulo_orden").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModuloModels(rows), nil)
}

/* GET /api/modulos/:id */
func (h *ModuloController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.ModuloModel
	if err := h.DB.First(&m, "modulo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Módulo no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromModuloModel(m))
}

/* POST /api/modulos */
func (h *ModuloController) Create(c *fiber.Ctx) error {
	var req dto.CreateModuloRequest
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
	return helper.JsonCreated(c, "Módulo creado", dto.FromModuloModel(m))
}

/* PUT /api/modulos/:id */
func (h *ModuloController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateModuloRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.ModuloModel
	if err := h.DB.First(&m, "modulo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Módulo no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Módulo actualizado", dto.FromModuloModel(m))
}

/* DELETE /api/modulos/:id */
func (h *ModuloController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.ModuloModel{}, "modulo_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Módulo no encontrado")
	}
	return helper.JsonDeleted(c, "Módulo eliminado", fiber.Map{"modulo_id": id})
}
