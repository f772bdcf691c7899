package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/examenes/dto"
	model "academico_backend/internals/features/academico/examenes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

type ExamenController struct {
	DB *gorm.DB
}

func NewExamenController(db *gorm.DB) *ExamenController {
	return &ExamenController{DB: db}
}

/* GET /api/examenes?modulo=&bloque=&tipo_examen=PARCIAL,RECUP */
func (h *ExamenController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ExamenModel{})

	if moduloID, err := helper.ParseUUIDQuery(c, "modulo"); err != nil {
		return err
	} else if moduloID != nil {
		q = q.Where("examen_modulo_id = ?", *moduloID)
	}
	if bloqueID, err := helper.ParseUUIDQuery(c, "bloque"); err != nil {
		return err
	} else if bloqueID != nil {
		q = q.Where("examen_bloque_id = ?", *bloqueID)
	}
	if raw := strings.TrimSpace(c.Query("tipo_examen")); raw != "" {
		tipos := strings.Split(raw, ",")
		for i := range tipos {
			tipos[i] = strings.TrimSpace(tipos[i])
		}
		q = q.Where("examen_tipo IN ?", tipos)
	}

	var rows []model.ExamenModel
	if err := q.Order("examen_fecha, examen_id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ctx, err := h.resolverContexto(rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromExamenModels(rows, ctx), nil)
}

/* GET /api/examenes/:id */
func (h *ExamenController) GetByID(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}
	ctx, err := h.resolverContexto([]model.ExamenModel{*m})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromExamenModel(*m, ctx))
}

/* POST /api/examenes */
func (h *ExamenController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validarAnclaje(req.ModuloID, req.BloqueID, model.TipoExamen(req.Tipo)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Examen creado", dto.FromExamenModel(m, dto.ExamenContexto{}))
}

/* PUT /api/examenes/:id */
func (h *ExamenController) Update(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	var req dto.UpdateExamenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := validarAnclaje(m.ExamenModuloID, m.ExamenBloqueID, m.ExamenTipo); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Examen actualizado", dto.FromExamenModel(*m, dto.ExamenContexto{}))
}

/* DELETE /api/examenes/:id */
func (h *ExamenController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.ExamenModel{}, "examen_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Examen no encontrado")
	}
	return helper.JsonDeleted(c, "Examen eliminado", fiber.Map{"examen_id": id})
}

// Un examen cuelga de un módulo o de un bloque, nunca de ambos ni de ninguno.
// Los finales van sobre bloques, el resto sobre módulos.
func validarAnclaje(moduloID, bloqueID *uuid.UUID, tipo model.TipoExamen) error {
	if (moduloID == nil) == (bloqueID == nil) {
		return errors.New("un examen debe referenciar un módulo o un bloque, pero no ambos")
	}
	if tipo.EsFinal() && bloqueID == nil {
		return errors.New("los exámenes finales y equivalencias van asociados a un bloque")
	}
	if !tipo.EsFinal() && moduloID == nil {
		return errors.New("los parciales y recuperatorios van asociados a un módulo")
	}
	return nil
}

func (h *ExamenController) buscar(c *fiber.Ctx) (*model.ExamenModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}

	var m model.ExamenModel
	if err := h.DB.First(&m, "examen_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Examen no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// resolverContexto carga los nombres de módulo y bloque en dos consultas
// en lote, sin importar cuántos exámenes haya.
func (h *ExamenController) resolverContexto(rows []model.ExamenModel) (dto.ExamenContexto, error) {
	ctx := dto.ExamenContexto{
		ModuloNombre: map[uuid.UUID]string{},
		BloqueNombre: map[uuid.UUID]string{},
	}

	moduloIDs := make([]uuid.UUID, 0, len(rows))
	bloqueIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.ExamenModuloID != nil {
			moduloIDs = append(moduloIDs, *r.ExamenModuloID)
		}
		if r.ExamenBloqueID != nil {
			bloqueIDs = append(bloqueIDs, *r.ExamenBloqueID)
		}
	}

	if len(moduloIDs) > 0 {
		var modulos []pmodel.ModuloModel
		if err := h.DB.Where("modulo_id IN ?", moduloIDs).Find(&modulos).Error; err != nil {
			return ctx, err
		}
		for _, m := range modulos {
			ctx.ModuloNombre[m.ModuloID] = m.ModuloNombre
		}
	}
	if len(bloqueIDs) > 0 {
		var bloques []pmodel.BloqueModel
		if err := h.DB.Where("bloque_id IN ?", bloqueIDs).Find(&bloques).Error; err != nil {
			return ctx, err
		}
		for _, b := range bloques {
			ctx.BloqueNombre[b.BloqueID] = b.BloqueNombre
		}
	}
	return ctx, nil
}
