package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academico_backend/internals/features/academico/analiticas/dto"
	service "academico_backend/internals/features/academico/analiticas/service"
	amodel "academico_backend/internals/features/academico/asistencias/model"
	cmodel "academico_backend/internals/features/academico/cohortes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

type AnaliticaController struct {
	DB    *gorm.DB
	Cache *service.Cache
}

func NewAnaliticaController(db *gorm.DB, cache *service.Cache) *AnaliticaController {
	return &AnaliticaController{DB: db, Cache: cache}
}

// filtrosAnalitica son los filtros opcionales comunes a las analíticas.
type filtrosAnalitica struct {
	ProgramaID *uuid.UUID
	CohorteID  *uuid.UUID
	ModuloID   *uuid.UUID
	Desde      *time.Time
	Hasta      *time.Time
}

func (h *AnaliticaController) parsearFiltros(c *fiber.Ctx) (filtrosAnalitica, error) {
	var (
		f   filtrosAnalitica
		err error
	)
	if f.ProgramaID, err = helper.ParseUUIDQuery(c, "programa"); err != nil {
		return f, err
	}
	if f.CohorteID, err = helper.ParseUUIDQuery(c, "cohorte"); err != nil {
		return f, err
	}
	if f.ModuloID, err = helper.ParseUUIDQuery(c, "modulo"); err != nil {
		return f, err
	}
	if f.Desde, err = helper.ParseDateQuery(c, "desde"); err != nil {
		return f, err
	}
	if f.Hasta, err = helper.ParseDateQuery(c, "hasta"); err != nil {
		return f, err
	}
	return f, nil
}

// claveFiltros entra al cache key: cualquier filtro distinto es una entrada
// distinta.
func claveFiltros(c *fiber.Ctx, extras map[string]string) map[string]string {
	params := map[string]string{
		"programa": c.Query("programa"),
		"cohorte":  c.Query("cohorte"),
		"modulo":   c.Query("modulo"),
		"desde":    c.Query("desde"),
		"hasta":    c.Query("hasta"),
	}
	for nombre, valor := range extras {
		params[nombre] = valor
	}
	return params
}

/* GET /api/analiticas/inscripciones?programa=&cohorte=&modulo=&desde=&hasta=&agrupar=mes|total */
func (h *AnaliticaController) Inscripciones(c *fiber.Ctx) error {
	agrupar := strings.TrimSpace(c.Query("agrupar", "mes"))
	if agrupar != "mes" && agrupar != "total" {
		return fiber.NewError(fiber.StatusBadRequest, "El parámetro agrupar debe ser 'mes' o 'total'")
	}
	filtros, err := h.parsearFiltros(c)
	if err != nil {
		return err
	}

	key := h.Cache.Key("analiticas/inscripciones", claveFiltros(c, map[string]string{"agrupar": agrupar}))
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	// la serie corta por fecha de alta del registro, no por fecha académica
	consulta := func() *gorm.DB {
		q := h.DB.Table("inscripciones")
		if filtros.ProgramaID != nil {
			q = q.Where(`inscripcion_cohorte_id IN (
				SELECT cohorte_id FROM cohortes WHERE cohorte_programa_id = ?)`, *filtros.ProgramaID)
		}
		if filtros.CohorteID != nil {
			q = q.Where("inscripcion_cohorte_id = ?", *filtros.CohorteID)
		}
		if filtros.ModuloID != nil {
			q = q.Where("inscripcion_modulo_id = ?", *filtros.ModuloID)
		}
		if filtros.Desde != nil {
			q = q.Where("inscripcion_created_at >= ?", *filtros.Desde)
		}
		if filtros.Hasta != nil {
			q = q.Where("inscripcion_created_at < ?", filtros.Hasta.AddDate(0, 0, 1))
		}
		return q
	}

	var resp dto.InscripcionesAnaliticaResponse
	if err := consulta().Count(&resp.Total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if agrupar == "mes" {
		if err := consulta().
			Select("to_char(date_trunc('month', inscripcion_created_at), 'YYYY-MM') AS mes, COUNT(*) AS cantidad").
			Group("1").Order("1").
			Scan(&resp.Serie).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	h.Cache.Set(key, resp)
	return helper.JsonOK(c, "", resp)
}

/* GET /api/analiticas/asistencia?agrupar=modulo|semana&programa=&cohorte=&modulo=&desde=&hasta= */
func (h *AnaliticaController) Asistencia(c *fiber.Ctx) error {
	agrupar := strings.TrimSpace(c.Query("agrupar", "modulo"))
	if agrupar != "modulo" && agrupar != "semana" {
		return fiber.NewError(fiber.StatusBadRequest, "El parámetro agrupar debe ser 'modulo' o 'semana'")
	}
	filtros, err := h.parsearFiltros(c)
	if err != nil {
		return err
	}

	key := h.Cache.Key("analiticas/asistencia", claveFiltros(c, map[string]string{"agrupar": agrupar}))
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	asistencias, err := h.cargarAsistencias(filtros)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var resp dto.AsistenciaAnaliticaResponse
	resp.Total, resp.Presentes, resp.Tasa = service.ResumirAsistencia(asistencias)

	switch agrupar {
	case "modulo":
		nombres, err := h.nombresDeModulos(asistencias)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		resp.Grupos = service.AgruparAsistencia(asistencias, func(a amodel.AsistenciaModel) string {
			return nombres[a.AsistenciaModuloID]
		})
	case "semana":
		if filtros.CohorteID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Agrupar por semana requiere el parámetro cohorte")
		}
		inicio, err := h.inicioDeCohorte(*filtros.CohorteID)
		if err != nil {
			return err
		}
		resp.Grupos = service.AgruparAsistencia(asistencias, func(a amodel.AsistenciaModel) string {
			// anterior al inicio del bloque: fuera de toda semana
			if a.AsistenciaFecha.Before(inicio) {
				return ""
			}
			semana := int(a.AsistenciaFecha.Sub(inicio).Hours()/(24*7)) + 1
			return fmt.Sprintf("Semana %02d", semana)
		})
	}

	h.Cache.Set(key, resp)
	return helper.JsonOK(c, "", resp)
}

/* GET /api/analiticas/notas?programa=&cohorte=&modulo=&tipo_examen=&desde=&hasta= */
func (h *AnaliticaController) Notas(c *fiber.Ctx) error {
	filtros, err := h.parsearFiltros(c)
	if err != nil {
		return err
	}
	tiposFiltro := parsearTipos(c.Query("tipo_examen"))

	key := h.Cache.Key("analiticas/notas", claveFiltros(c, map[string]string{"tipo_examen": c.Query("tipo_examen")}))
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var examenes []xmodel.ExamenModel
	if err := h.consultaExamenes(filtros, tiposFiltro).
		Select("examen_id, examen_tipo").
		Find(&examenes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	tipoPorExamen := make(map[uuid.UUID]xmodel.TipoExamen, len(examenes))
	for _, e := range examenes {
		tipoPorExamen[e.ExamenID] = e.ExamenTipo
	}

	notaQ := h.DB.Model(&xmodel.NotaModel{})
	if filtros.ProgramaID != nil || filtros.ModuloID != nil || len(tiposFiltro) > 0 {
		notaQ = notaQ.Where("nota_examen_id IN (?)",
			h.consultaExamenes(filtros, tiposFiltro).Select("examen_id"))
	}
	if filtros.CohorteID != nil {
		notaQ = notaQ.Where(`nota_estudiante_id IN (
			SELECT inscripcion_estudiante_id FROM inscripciones WHERE inscripcion_cohorte_id = ?)`,
			*filtros.CohorteID)
	}
	if filtros.Desde != nil {
		notaQ = notaQ.Where("nota_fecha_calificacion >= ?", *filtros.Desde)
	}
	if filtros.Hasta != nil {
		notaQ = notaQ.Where("nota_fecha_calificacion <= ?", *filtros.Hasta)
	}

	var notas []xmodel.NotaModel
	if err := notaQ.Find(&notas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	aprobadas := 0
	for _, n := range notas {
		if n.NotaAprobado {
			aprobadas++
		}
	}
	resp := dto.NotasAnaliticaResponse{
		Total:      len(notas),
		Aprobadas:  aprobadas,
		Tasa:       service.TasaSegura(aprobadas, len(notas)),
		PorTipo:    service.TasasAprobacionPorTipo(notas, tipoPorExamen),
		Histograma: service.HistogramaCalificaciones(notas),
	}
	h.Cache.Set(key, resp)
	return helper.JsonOK(c, "", resp)
}

// consultaExamenes arma el filtro por programa, módulo y tipo sobre examenes.
func (h *AnaliticaController) consultaExamenes(filtros filtrosAnalitica, tipos []string) *gorm.DB {
	q := h.DB.Model(&xmodel.ExamenModel{})
	if filtros.ModuloID != nil {
		q = q.Where("examen_modulo_id = ?", *filtros.ModuloID)
	}
	if len(tipos) > 0 {
		q = q.Where("examen_tipo IN ?", tipos)
	}
	if filtros.ProgramaID != nil {
		q = q.Where(`(examen_modulo_id IN (
			SELECT m.modulo_id FROM modulos m
			JOIN bloques b ON b.bloque_id = m.modulo_bloque_id
			JOIN baterias bat ON bat.bateria_id = b.bloque_bateria_id
			WHERE bat.bateria_programa_id = ?)
		OR examen_bloque_id IN (
			SELECT b.bloque_id FROM bloques b
			JOIN baterias bat ON bat.bateria_id = b.bloque_bateria_id
			WHERE bat.bateria_programa_id = ?))`, *filtros.ProgramaID, *filtros.ProgramaID)
	}
	return q
}

func parsearTipos(raw string) []string {
	var tipos []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tipos = append(tipos, t)
		}
	}
	return tipos
}

// cargarAsistencias trae las asistencias bajo los filtros opcionales. El
// filtro por programa o cohorte restringe por los estudiantes inscriptos.
func (h *AnaliticaController) cargarAsistencias(filtros filtrosAnalitica) ([]amodel.AsistenciaModel, error) {
	q := h.DB.Model(&amodel.AsistenciaModel{})
	if filtros.CohorteID != nil {
		q = q.Where(`asistencia_estudiante_id IN (
			SELECT inscripcion_estudiante_id FROM inscripciones WHERE inscripcion_cohorte_id = ?)`,
			*filtros.CohorteID)
	}
	if filtros.ProgramaID != nil {
		q = q.Where(`asistencia_estudiante_id IN (
			SELECT i.inscripcion_estudiante_id FROM inscripciones i
			JOIN cohortes c ON c.cohorte_id = i.inscripcion_cohorte_id
			WHERE c.cohorte_programa_id = ?)`, *filtros.ProgramaID)
	}
	if filtros.ModuloID != nil {
		q = q.Where("asistencia_modulo_id = ?", *filtros.ModuloID)
	}
	if filtros.Desde != nil {
		q = q.Where("asistencia_fecha >= ?", *filtros.Desde)
	}
	if filtros.Hasta != nil {
		q = q.Where("asistencia_fecha <= ?", *filtros.Hasta)
	}
	var rows []amodel.AsistenciaModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (h *AnaliticaController) nombresDeModulos(asistencias []amodel.AsistenciaModel) (map[uuid.UUID]string, error) {
	visto := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0)
	for _, a := range asistencias {
		if !visto[a.AsistenciaModuloID] {
			visto[a.AsistenciaModuloID] = true
			ids = append(ids, a.AsistenciaModuloID)
		}
	}

	nombres := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return nombres, nil
	}
	var modulos []pmodel.ModuloModel
	if err := h.DB.Where("modulo_id IN ?", ids).Find(&modulos).Error; err != nil {
		return nil, err
	}
	for _, m := range modulos {
		nombres[m.ModuloID] = m.ModuloNombre
	}
	return nombres, nil
}

func (h *AnaliticaController) inicioDeCohorte(cohorteID uuid.UUID) (time.Time, error) {
	var cohorte cmodel.CohorteModel
	if err := h.DB.Preload("BloqueFechas").
		First(&cohorte, "cohorte_id = ?", cohorteID).Error; err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusNotFound, "Cohorte no encontrada")
	}
	if cohorte.BloqueFechas == nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "La cohorte no tiene bloque de fechas asignado")
	}
	return cohorte.BloqueFechas.BloqueFechasFechaInicio, nil
}
