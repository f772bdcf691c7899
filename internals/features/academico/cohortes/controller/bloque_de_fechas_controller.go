package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/cohortes/dto"
	model "academico_backend/internals/features/academico/cohortes/model"
	service "academico_backend/internals/features/academico/cohortes/service"
	helper "academico_backend/internals/helpers"
)

type BloqueDeFechasController struct {
	DB *gorm.DB
}

func NewBloqueDeFechasController(db *gorm.DB) *BloqueDeFechasController {
	return &BloqueDeFechasController{DB: db}
}

/* GET /api/bloques-de-fechas */
func (h *BloqueDeFechasController) List(c *fiber.Ctx) error {
	var rows []model.BloqueDeFechasModel
	if err := h.DB.Preload("SemanasConfig").
		Order("bloque_fechas_fecha_inicio").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromBloqueDeFechasModels(rows), nil)
}

/* GET /api/bloques-de-fechas/:id */
func (h *BloqueDeFechasController) GetByID(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromBloqueDeFechasModel(*m))
}

/* POST /api/bloques-de-fechas */
func (h *BloqueDeFechasController) Create(c *fiber.Ctx) error {
	var req dto.CreateBloqueDeFechasRequest
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
	return helper.JsonCreated(c, "Bloque de fechas creado", dto.FromBloqueDeFechasModel(m))
}

/* PUT /api/bloques-de-fechas/:id */
func (h *BloqueDeFechasController) Update(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBloqueDeFechasRequest
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
	return helper.JsonUpdated(c, "Bloque de fechas actualizado", dto.FromBloqueDeFechasModel(*m))
}

/* DELETE /api/bloques-de-fechas/:id */
func (h *BloqueDeFechasController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.BloqueDeFechasModel{}, "bloque_fechas_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Bloque de fechas no encontrado")
	}
	return helper.JsonDeleted(c, "Bloque de fechas eliminado", fiber.Map{"bloque_fechas_id": id})
}

/* POST /api/bloques-de-fechas/:id/guardar-secuencia
   Reemplazo todo-o-nada de la secuencia de semanas. */
func (h *BloqueDeFechasController) GuardarSecuencia(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	var req dto.GuardarSecuenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tipos := make([]model.TipoSemana, 0, len(req.Semanas))
	for _, s := range req.Semanas {
		tipos = append(tipos, model.TipoSemana(s.Tipo))
	}

	if _, err := service.ReemplazarSecuencia(h.DB, m.BloqueFechasID, tipos); err != nil {
		// rollback completo: la secuencia original queda intacta
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "Secuencia guardada", fiber.Map{"status": "secuencia guardada"})
}

/* GET /api/bloques-de-fechas/:id/calendario */
func (h *BloqueDeFechasController) Calendario(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	calendario := service.ArmarCalendario(m.BloqueFechasFechaInicio, m.SemanasConfig)
	return helper.JsonOK(c, "", calendario)
}

func (h *BloqueDeFechasController) buscar(c *fiber.Ctx) (*model.BloqueDeFechasModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}

	var m model.BloqueDeFechasModel
	if err := h.DB.Preload("SemanasConfig").
		First(&m, "bloque_fechas_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Bloque de fechas no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
