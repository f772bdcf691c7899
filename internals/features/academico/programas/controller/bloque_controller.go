package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	estudianteModel "academico_backend/internals/features/academico/estudiantes/model"
	estudianteService "academico_backend/internals/features/academico/estudiantes/service"
	dto "academico_backend/internals/features/academico/programas/dto"
	model "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

type BloqueController struct {
	DB *gorm.DB
}

func NewBloqueController(db *gorm.DB) *BloqueController {
	return &BloqueController{DB: db}
}

/* GET /api/bloques */
func (h *BloqueController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.BloqueModel{}).Preload("Correlativas")
	if bateriaID, err := helper.ParseUUIDQuery(c, "bateria"); err != nil {
		return err
	} else if bateriaID != nil {
		q = q.Where("bloque_bateria_id = ?", *bateriaID)
	}

	var rows []model.BloqueModel
	if err := q.Order("bloque_orden").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromBloqueModels(rows), nil)
}

/* GET /api/bloques/:id */
func (h *BloqueController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.BloqueModel
	if err := h.DB.Preload("Correlativas").First(&m, "bloque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bloque no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromBloqueModel(m))
}

/* POST /api/bloques */
func (h *BloqueController) Create(c *fiber.Ctx) error {
	var req dto.CreateBloqueRequest
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
	if len(req.Correlativas) > 0 {
		if err := h.reemplazarCorrelativas(&m, req.Correlativas); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonCreated(c, "Bloque creado", dto.FromBloqueModel(m))
}

/* PUT /api/bloques/:id */
func (h *BloqueController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBloqueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.BloqueModel
	if err := h.DB.Preload("Correlativas").First(&m, "bloque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bloque no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if req.Correlativas != nil {
		if err := h.reemplazarCorrelativas(&m, *req.Correlativas); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonUpdated(c, "Bloque actualizado", dto.FromBloqueModel(m))
}

/* DELETE /api/bloques/:id */
func (h *BloqueController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.BloqueModel{}, "bloque_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Bloque no encontrado")
	}
	return helper.JsonDeleted(c, "Bloque eliminado", fiber.Map{"bloque_id": id})
}

/* GET /api/bloques/:id/verificar-correlativas?student_id=<id>
   Para cada correlativa del bloque, chequea si el estudiante la tiene
   aprobada. Devuelve las faltantes y el flag global. */
func (h *BloqueController) VerificarCorrelativas(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	studentRaw := strings.TrimSpace(c.Query("student_id"))
	if studentRaw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "El parámetro 'student_id' es requerido")
	}
	studentID, err := helper.ParseUUIDQuery(c, "student_id")
	if err != nil {
		return err
	}

	var bloque model.BloqueModel
	if err := h.DB.Preload("Correlativas").First(&bloque, "bloque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bloque no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var exists int64
	if err := h.DB.Model(&estudianteModel.EstudianteModel{}).
		Where("estudiante_id = ?", *studentID).Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
	}

	aprobados, err := estudianteService.BloquesAprobadosSet(h.DB, *studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var faltantes []dto.BloqueFaltante
	for _, correlativa := range bloque.Correlativas {
		if !aprobados[correlativa.BloqueID] {
			faltantes = append(faltantes, dto.BloqueFaltante{
				ID:     correlativa.BloqueID,
				Nombre: correlativa.BloqueNombre,
			})
		}
	}

	return helper.JsonOK(c, "", dto.CorrelativasResponse{
		RequisitosCumplidos: len(faltantes) == 0,
		BloquesFaltantes:    faltantes,
	})
}

func (h *BloqueController) reemplazarCorrelativas(m *model.BloqueModel, ids []uuid.UUID) error {
	correlativas := make([]model.BloqueModel, 0, len(ids))
	for _, cid := range ids {
		correlativas = append(correlativas, model.BloqueModel{BloqueID: cid})
	}
	if err := h.DB.Model(m).Association("Correlativas").Replace(correlativas); err != nil {
		return err
	}
	m.Correlativas = correlativas
	return nil
}
