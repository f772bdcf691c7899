package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/estudiantes/dto"
	model "academico_backend/internals/features/academico/estudiantes/model"
	service "academico_backend/internals/features/academico/estudiantes/service"
	helper "academico_backend/internals/helpers"
)

type EstudianteController struct {
	DB *gorm.DB
}

func NewEstudianteController(db *gorm.DB) *EstudianteController {
	return &EstudianteController{DB: db}
}

/* GET /api/estudiantes */
func (h *EstudianteController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&model.EstudianteModel{})
	if dni := strings.TrimSpace(c.Query("dni")); dni != "" {
		q = q.Where("estudiante_dni = ?", dni)
	}
	if apellido := strings.TrimSpace(c.Query("apellido")); apellido != "" {
		q = q.Where("estudiante_apellido ILIKE ?", "%"+apellido+"%")
	}
	if ciudad := strings.TrimSpace(c.Query("ciudad")); ciudad != "" {
		q = q.Where("estudiante_ciudad ILIKE ?", "%"+ciudad+"%")
	}
	if estatus := strings.TrimSpace(c.Query("estatus")); estatus != "" {
		q = q.Where("estudiante_estatus = ?", estatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EstudianteModel
	if err := q.
		Order("estudiante_apellido, estudiante_nombre").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromModels(rows), &p)
}

/* GET /api/estudiantes/:id */
func (h *EstudianteController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.EstudianteModel
	if err := h.DB.First(&m, "estudiante_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

/* POST /api/estudiantes */
func (h *EstudianteController) Create(c *fiber.Ctx) error {
	var req dto.CreateEstudianteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un estudiante con ese DNI")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Estudiante creado", dto.FromModel(m))
}

/* PUT /api/estudiantes/:id */
func (h *EstudianteController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEstudianteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.EstudianteModel
	if err := h.DB.First(&m, "estudiante_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un estudiante con ese DNI")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Estudiante actualizado", dto.FromModel(m))
}

/* DELETE /api/estudiantes/:id
   Baja lógica: en lugar de borrar, el estatus pasa a "Baja". */
func (h *EstudianteController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.EstudianteModel
	if err := h.DB.First(&m, "estudiante_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m.EstudianteEstatus = model.EstatusBaja
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Estudiante dado de baja", dto.FromModel(m))
}

/* GET /api/estudiantes/:id/bloques-aprobados */
func (h *EstudianteController) BloquesAprobados(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var exists int64
	if err := h.DB.Model(&model.EstudianteModel{}).
		Where("estudiante_id = ?", id).Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
	}

	rows, err := service.BloquesAprobados(h.DB, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", rows)
}
