package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/asistencias/dto"
	model "academico_backend/internals/features/academico/asistencias/model"
	helper "academico_backend/internals/helpers"
)

type AsistenciaController struct {
	DB *gorm.DB
}

func NewAsistenciaController(db *gorm.DB) *AsistenciaController {
	return &AsistenciaController{DB: db}
}

/* GET /api/asistencias?estudiante=&modulo=&fecha=&presente=&archivo_origen= */
func (h *AsistenciaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 500)

	q := h.DB.Model(&model.AsistenciaModel{})
	if estudianteID, err := helper.ParseUUIDQuery(c, "estudiante"); err != nil {
		return err
	} else if estudianteID != nil {
		q = q.Where("asistencia_estudiante_id = ?", *estudianteID)
	}
	if moduloID, err := helper.ParseUUIDQuery(c, "modulo"); err != nil {
		return err
	} else if moduloID != nil {
		q = q.Where("asistencia_modulo_id = ?", *moduloID)
	}
	if fecha, err := helper.ParseDateQuery(c, "fecha"); err != nil {
		return err
	} else if fecha != nil {
		q = q.Where("asistencia_fecha = ?", *fecha)
	}
	if raw := c.Query("presente"); raw != "" {
		presente, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Parámetro presente inválido")
		}
		q = q.Where("asistencia_presente = ?", presente)
	}
	if archivo := strings.TrimSpace(c.Query("archivo_origen")); archivo != "" {
		q = q.Where("asistencia_archivo_origen = ?", archivo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AsistenciaModel
	if err := q.Order("asistencia_fecha, asistencia_id").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromModels(rows), &pagination)
}

/* GET /api/asistencias/:id */
func (h *AsistenciaController) GetByID(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(*m))
}

/* POST /api/asistencias */
func (h *AsistenciaController) Create(c *fiber.Ctx) error {
	var req dto.CreateAsistenciaRequest
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
	return helper.JsonCreated(c, "Asistencia registrada", dto.FromModel(m))
}

/* PUT /api/asistencias/:id */
func (h *AsistenciaController) Update(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Asistencia actualizada", dto.FromModel(*m))
}

/* DELETE /api/asistencias/:id */
func (h *AsistenciaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.AsistenciaModel{}, "asistencia_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Asistencia no encontrada")
	}
	return helper.JsonDeleted(c, "Asistencia eliminada", fiber.Map{"asistencia_id": id})
}

func (h *AsistenciaController) buscar(c *fiber.Ctx) (*model.AsistenciaModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}

	var m model.AsistenciaModel
	if err := h.DB.First(&m, "asistencia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asistencia no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
