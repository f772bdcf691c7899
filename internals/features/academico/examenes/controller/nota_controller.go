package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/examenes/dto"
	model "academico_backend/internals/features/academico/examenes/model"
	service "academico_backend/internals/features/academico/examenes/service"
	pmodel "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

type NotaController struct {
	DB *gorm.DB
}

func NewNotaController(db *gorm.DB) *NotaController {
	return &NotaController{DB: db}
}

/* GET /api/notas?estudiante=&examen=&aprobado= */
func (h *NotaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&model.NotaModel{})
	if estudianteID, err := helper.ParseUUIDQuery(c, "estudiante"); err != nil {
		return err
	} else if estudianteID != nil {
		q = q.Where("nota_estudiante_id = ?", *estudianteID)
	}
	if examenID, err := helper.ParseUUIDQuery(c, "examen"); err != nil {
		return err
	} else if examenID != nil {
		q = q.Where("nota_examen_id = ?", *examenID)
	}
	if raw := c.Query("aprobado"); raw != "" {
		aprobado, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Parámetro aprobado inválido")
		}
		q = q.Where("nota_aprobado = ?", aprobado)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotaModel
	if err := q.Preload("Examen").
		Order("nota_created_at DESC, nota_id").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ctx, err := h.resolverContexto(rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromNotaModels(rows, ctx), &pagination)
}

/* GET /api/notas/:id */
func (h *NotaController) GetByID(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}
	ctx, err := h.resolverContexto([]model.NotaModel{*m})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromNotaModel(*m, ctx))
}

/* POST /api/notas */
func (h *NotaController) Create(c *fiber.Ctx) error {
	var req dto.CreateNotaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var examen model.ExamenModel
	if err := h.DB.First(&examen, "examen_id = ?", req.ExamenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Examen no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	calificacion, err := service.ValidarNota(service.NotaInput{
		Calificacion:   req.Calificacion,
		Aprobado:       req.Aprobado,
		EsEquivalencia: req.EsEquivalencia,
		TipoExamen:     examen.ExamenTipo,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.Aprobado {
		if err := h.chequearAprobadaDuplicada(req.ExamenID, req.EstudianteID, uuid.Nil); err != nil {
			return err
		}
	}

	m := model.NotaModel{
		NotaExamenID:             req.ExamenID,
		NotaEstudianteID:         req.EstudianteID,
		NotaCalificacion:         calificacion,
		NotaAprobado:             req.Aprobado,
		NotaFechaCalificacion:    req.FechaCalificacion,
		NotaEsEquivalencia:       req.EsEquivalencia,
		NotaOrigenEquivalencia:   req.OrigenEquivalencia,
		NotaFechaRefEquivalencia: req.FechaRefEquivalencia,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "El estudiante ya tiene una nota aprobada para este examen")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	m.Examen = &examen
	ctx, err := h.resolverContexto([]model.NotaModel{m})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Nota creada", dto.FromNotaModel(m, ctx))
}

/* PUT /api/notas/:id */
func (h *NotaController) Update(c *fiber.Ctx) error {
	m, err := h.buscar(c)
	if err != nil {
		return err
	}

	var req dto.UpdateNotaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// mezcla los cambios con lo persistido antes de revalidar el conjunto
	in := service.NotaInput{
		Calificacion:   float64(m.NotaCalificacion),
		Aprobado:       m.NotaAprobado,
		EsEquivalencia: m.NotaEsEquivalencia,
	}
	if m.Examen != nil {
		in.TipoExamen = m.Examen.ExamenTipo
	}
	if req.Calificacion != nil {
		in.Calificacion = *req.Calificacion
	}
	if req.Aprobado != nil {
		in.Aprobado = *req.Aprobado
	}
	if req.EsEquivalencia != nil {
		in.EsEquivalencia = *req.EsEquivalencia
	}

	calificacion, err := service.ValidarNota(in)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if in.Aprobado && !m.NotaAprobado {
		if err := h.chequearAprobadaDuplicada(m.NotaExamenID, m.NotaEstudianteID, m.NotaID); err != nil {
			return err
		}
	}

	m.NotaCalificacion = calificacion
	m.NotaAprobado = in.Aprobado
	m.NotaEsEquivalencia = in.EsEquivalencia
	if req.FechaCalificacion != nil {
		m.NotaFechaCalificacion = req.FechaCalificacion
	}
	if req.OrigenEquivalencia != nil {
		m.NotaOrigenEquivalencia = *req.OrigenEquivalencia
	}
	if req.FechaRefEquivalencia != nil {
		m.NotaFechaRefEquivalencia = req.FechaRefEquivalencia
	}

	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "El estudiante ya tiene una nota aprobada para este examen")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	ctx, err := h.resolverContexto([]model.NotaModel{*m})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Nota actualizada", dto.FromNotaModel(*m, ctx))
}

/* DELETE /api/notas/:id */
func (h *NotaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Delete(&model.NotaModel{}, "nota_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Nota no encontrada")
	}
	return helper.JsonDeleted(c, "Nota eliminada", fiber.Map{"nota_id": id})
}

// chequearAprobadaDuplicada hace el control read-then-write; el índice
// parcial uq_notas_aprobadas cubre la carrera restante.
func (h *NotaController) chequearAprobadaDuplicada(examenID, estudianteID, excluirNotaID uuid.UUID) error {
	q := h.DB.Model(&model.NotaModel{}).
		Where("nota_examen_id = ? AND nota_estudiante_id = ? AND nota_aprobado = TRUE", examenID, estudianteID)
	if excluirNotaID != uuid.Nil {
		q = q.Where("nota_id <> ?", excluirNotaID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if total > 0 {
		return fiber.NewError(fiber.StatusConflict, "El estudiante ya tiene una nota aprobada para este examen")
	}
	return nil
}

func (h *NotaController) buscar(c *fiber.Ctx) (*model.NotaModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}

	var m model.NotaModel
	if err := h.DB.Preload("Examen").First(&m, "nota_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Nota no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// resolverContexto recorre la cadena examen → módulo → bloque → batería →
// programa en consultas por lote (una por nivel) y arma los mapas de nombres.
func (h *NotaController) resolverContexto(rows []model.NotaModel) (dto.NotaContexto, error) {
	ctx := dto.NotaContexto{
		ModuloNombre:   map[uuid.UUID]string{},
		BloqueNombre:   map[uuid.UUID]string{},
		ProgramaNombre: map[uuid.UUID]string{},
	}

	moduloIDs := make([]uuid.UUID, 0, len(rows))
	bloqueIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.Examen == nil {
			continue
		}
		if r.Examen.ExamenModuloID != nil {
			moduloIDs = append(moduloIDs, *r.Examen.ExamenModuloID)
		}
		if r.Examen.ExamenBloqueID != nil {
			bloqueIDs = append(bloqueIDs, *r.Examen.ExamenBloqueID)
		}
	}
	if len(moduloIDs) == 0 && len(bloqueIDs) == 0 {
		return ctx, nil
	}

	moduloBloque := map[uuid.UUID]uuid.UUID{}
	if len(moduloIDs) > 0 {
		var modulos []pmodel.ModuloModel
		if err := h.DB.Where("modulo_id IN ?", moduloIDs).Find(&modulos).Error; err != nil {
			return ctx, err
		}
		for _, m := range modulos {
			ctx.ModuloNombre[m.ModuloID] = m.ModuloNombre
			moduloBloque[m.ModuloID] = m.ModuloBloqueID
			bloqueIDs = append(bloqueIDs, m.ModuloBloqueID)
		}
	}

	bloqueBateria := map[uuid.UUID]uuid.UUID{}
	var bloques []pmodel.BloqueModel
	if err := h.DB.Where("bloque_id IN ?", bloqueIDs).Find(&bloques).Error; err != nil {
		return ctx, err
	}
	bateriaIDs := make([]uuid.UUID, 0, len(bloques))
	for _, b := range bloques {
		ctx.BloqueNombre[b.BloqueID] = b.BloqueNombre
		bloqueBateria[b.BloqueID] = b.BloqueBateriaID
		bateriaIDs = append(bateriaIDs, b.BloqueBateriaID)
	}

	bateriaPrograma := map[uuid.UUID]uuid.UUID{}
	if len(bateriaIDs) > 0 {
		var baterias []pmodel.BateriaModel
		if err := h.DB.Where("bateria_id IN ?", bateriaIDs).Find(&baterias).Error; err != nil {
			return ctx, err
		}
		programaIDs := make([]uuid.UUID, 0, len(baterias))
		for _, b := range baterias {
			bateriaPrograma[b.BateriaID] = b.BateriaProgramaID
			programaIDs = append(programaIDs, b.BateriaProgramaID)
		}

		programaNombre := map[uuid.UUID]string{}
		if len(programaIDs) > 0 {
			var programas []pmodel.ProgramaModel
			if err := h.DB.Where("programa_id IN ?", programaIDs).Find(&programas).Error; err != nil {
				return ctx, err
			}
			for _, p := range programas {
				programaNombre[p.ProgramaID] = p.ProgramaNombre
			}
		}

		for _, r := range rows {
			if r.Examen == nil {
				continue
			}
			var bloqueID uuid.UUID
			switch {
			case r.Examen.ExamenBloqueID != nil:
				bloqueID = *r.Examen.ExamenBloqueID
			case r.Examen.ExamenModuloID != nil:
				bloqueID = moduloBloque[*r.Examen.ExamenModuloID]
			default:
				continue
			}
			if programaID, ok := bateriaPrograma[bloqueBateria[bloqueID]]; ok {
				ctx.ProgramaNombre[r.NotaExamenID] = programaNombre[programaID]
			}
		}
	}
	return ctx, nil
}
