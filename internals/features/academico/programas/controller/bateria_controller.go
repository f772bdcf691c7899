package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/programas/dto"
	model "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

type BateriaController struct {
	DB *gorm.DB
}

func NewBateriaController(db *gorm.DB) *BateriaController {
	return &BateriaController{DB: db}
}

/* GET /api/baterias */
func (h *BateriaController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.BateriaModel{})
	if programaID, err := helper.ParseUUIDQuery(c, "programa"); err != nil {
		return err
	} else if programaID != nil {
		q = q.Where("bateria_programa_id = ?", *programaID)
	}

	var rows []model.BateriaModel
	if err := q.Order("bateria_orden").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromBateriaModels(rows), nil)
}

/* POST /api/baterias */
func (h *BateriaController) Create(c *fiber.Ctx) error {
	var req dto.CreateBateriaRequest
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
	return helper.JsonCreated(c, "Batería creada", dto.FromBateriaModel(m))
}

/* PUT /api/baterias/:id */
func (h *BateriaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.BateriaModel
	if err := h.DB.First(&m, "bateria_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batería no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Batería actualizada", dto.FromBateriaModel(m))
}

/* DELETE /api/baterias/:id */
func (h *BateriaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.BateriaModel{}, "bateria_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Batería no encontrada")
	}
	return helper.JsonDeleted(c, "Batería eliminada", fiber.Map{"bateria_id": id})
}
