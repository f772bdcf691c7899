package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/inscripciones/dto"
	model "academico_backend/internals/features/academico/inscripciones/model"
	helper "academico_backend/internals/helpers"
)

type InscripcionController struct {
	DB *gorm.DB
}

func NewInscripcionController(db *gorm.DB) *InscripcionController {
	return &InscripcionController{DB: db}
}

func (h *InscripcionController) conRelaciones() *gorm.DB {
	return h.DB.
		Preload("Estudiante").
		Preload("Cohorte").
		Preload("Cohorte.Programa").
		Preload("Cohorte.BloqueFechas").
		Preload("Modulo")
}

/* GET /api/inscripciones?estudiante=&cohorte=&modulo=&estado= */
func (h *InscripcionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&model.InscripcionModel{})
	if estudianteID, err := helper.ParseUUIDQuery(c, "estudiante"); err != nil {
		return err
	} else if estudianteID != nil {
		q = q.Where("inscripcion_estudiante_id = ?", *estudianteID)
	}
	if cohorteID, err := helper.ParseUUIDQuery(c, "cohorte"); err != nil {
		return err
	} else if cohorteID != nil {
		q = q.Where("inscripcion_cohorte_id = ?", *cohorteID)
	}
	if moduloID, err := helper.ParseUUIDQuery(c, "modulo"); err != nil {
		return err
	} else if moduloID != nil {
		q = q.Where("inscripcion_modulo_id = ?", *moduloID)
	}
	if estado := strings.TrimSpace(c.Query("estado")); estado != "" {
		q = q.Where("inscripcion_estado = ?", estado)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InscripcionModel
	if err := q.
		Preload("Estudiante").
		Preload("Cohorte").
		Preload("Cohorte.Programa").
		Preload("Cohorte.BloqueFechas").
		Preload("Modulo").
		Order("inscripcion_fecha DESC, inscripcion_id").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromModels(rows), &pagination)
}

/* GET /api/inscripciones/:id */
func (h *InscripcionController) GetByID(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModel(*m))
}

/* POST /api/inscripciones */
func (h *InscripcionController) Create(c *fiber.Ctx) error {
	var req dto.CreateInscripcionRequest
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
	if err := h.conRelaciones().First(&m, "inscripcion_id = ?", m.InscripcionID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Inscripción creada", dto.FromModel(m))
}

/* PUT /api/inscripciones/:id */
func (h *InscripcionController) Update(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	var req dto.UpdateInscripcionRequest
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
	return helper.JsonUpdated(c, "Inscripción actualizada", dto.FromModel(*m))
}

/* DELETE /api/inscripciones/:id */
func (h *InscripcionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.InscripcionModel{}, "inscripcion_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Inscripción no encontrada")
	}
	return helper.JsonDeleted(c, "Inscripción eliminada", fiber.Map{"inscripcion_id": id})
}

func (h *InscripcionController) buscar(c *fiber.Ctx) (*model.InscripcionModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}

	var m model.InscripcionModel
	if err := h.conRelaciones().First(&m, "inscripcion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Inscripción no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
