package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "academico_backend/internals/features/academico/analiticas/dto"
	service "academico_backend/internals/features/academico/analiticas/service"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	pmodel "academico_backend/internals/features/academico/programas/model"
	helper "academico_backend/internals/helpers"
)

/* GET /api/analiticas/dashboard */
func (h *AnaliticaController) Dashboard(c *fiber.Ctx) error {
	key := h.Cache.Key("analiticas/dashboard", nil)
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var resp dto.DashboardResponse
	// activos y egresados se cuentan por estudiante distinto, no por inscripción
	if err := h.DB.Raw(`
		SELECT COUNT(DISTINCT inscripcion_estudiante_id)
		FROM inscripciones WHERE inscripcion_estado = 'ACTIVO'`).
		Scan(&resp.EstudiantesActivos).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Raw(`
		SELECT COUNT(DISTINCT inscripcion_estudiante_id)
		FROM inscripciones WHERE inscripcion_estado = 'EGRESADO'`).
		Scan(&resp.EstudiantesEgresados).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Raw(`
		SELECT COUNT(*) FROM inscripciones WHERE inscripcion_estado = 'ACTIVO'`).
		Scan(&resp.InscripcionesActivas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Model(&pmodel.ProgramaModel{}).
		Where("programa_activo = TRUE").
		Count(&resp.ProgramasActivos).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	type proporcion struct {
		Total int `gorm:"column:total"`
		Parte int `gorm:"column:parte"`
	}
	var notas proporcion
	if err := h.DB.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE nota_aprobado) AS parte
		FROM notas`).Scan(&notas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	resp.TasaAprobacion = service.PorcentajeSeguro(notas.Parte, notas.Total)

	var asistencias proporcion
	if err := h.DB.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE asistencia_presente) AS parte
		FROM asistencias`).Scan(&asistencias).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	resp.TasaAsistencia = service.PorcentajeSeguro(asistencias.Parte, asistencias.Total)

	if err := h.DB.Raw(`
		SELECT p.programa_nombre AS programa,
		       COUNT(DISTINCT i.inscripcion_estudiante_id) AS estudiantes
		FROM programas p
		LEFT JOIN cohortes c ON c.cohorte_programa_id = p.programa_id
		LEFT JOIN inscripciones i ON i.inscripcion_cohorte_id = c.cohorte_id
		GROUP BY p.programa_nombre
		ORDER BY p.programa_nombre`).Scan(&resp.ProgramasChart).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.Cache.Set(key, resp)
	return helper.JsonOK(c, "", resp)
}

/* GET /api/analiticas/kpis/inscriptos */
func (h *AnaliticaController) KpiInscriptos(c *fiber.Ctx) error {
	key := h.Cache.Key("analiticas/kpis/inscriptos", nil)
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var items []dto.KpiInscriptosItem
	if err := h.DB.Raw(`
		SELECT p.programa_codigo AS programa_codigo,
		       c.cohorte_nombre AS cohorte,
		       COUNT(i.inscripcion_id) AS inscriptos
		FROM inscripciones i
		JOIN cohortes c ON c.cohorte_id = i.inscripcion_cohorte_id
		JOIN programas p ON p.programa_id = c.cohorte_programa_id
		GROUP BY 1, 2
		ORDER BY 1, 2`).Scan(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.Cache.Set(key, items)
	return helper.JsonOK(c, "", items)
}

/* GET /api/analiticas/kpis/asistencia-promedio */
func (h *AnaliticaController) KpiAsistenciaPromedio(c *fiber.Ctx) error {
	key := h.Cache.Key("analiticas/kpis/asistencia-promedio", nil)
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	type fila struct {
		ModuloID  uuid.UUID `gorm:"column:modulo_id"`
		Nombre    string    `gorm:"column:nombre"`
		Total     int       `gorm:"column:total"`
		Presentes int       `gorm:"column:presentes"`
	}
	var filas []fila
	if err := h.DB.Raw(`
		SELECT m.modulo_id AS modulo_id,
		       m.modulo_nombre AS nombre,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE a.asistencia_presente) AS presentes
		FROM asistencias a
		JOIN modulos m ON m.modulo_id = a.asistencia_modulo_id
		GROUP BY 1, 2
		ORDER BY 2`).Scan(&filas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.TasaAsistenciaItem, 0, len(filas))
	for _, f := range filas {
		items = append(items, dto.TasaAsistenciaItem{
			Clave:     f.Nombre,
			Total:     f.Total,
			Presentes: f.Presentes,
			Tasa:      service.TasaSegura(f.Presentes, f.Total),
		})
	}

	h.Cache.Set(key, items)
	return helper.JsonOK(c, "", items)
}

/* GET /api/analiticas/kpis/aprobacion */
func (h *AnaliticaController) KpiAprobacion(c *fiber.Ctx) error {
	key := h.Cache.Key("analiticas/kpis/aprobacion", nil)
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	type fila struct {
		ModuloID  uuid.UUID `gorm:"column:modulo_id"`
		Tipo      string    `gorm:"column:tipo"`
		Total     int       `gorm:"column:total"`
		Aprobadas int       `gorm:"column:aprobadas"`
	}
	var filas []fila
	if err := h.DB.Raw(`
		SELECT e.examen_modulo_id AS modulo_id,
		       e.examen_tipo AS tipo,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE n.nota_aprobado) AS aprobadas
		FROM notas n
		JOIN examenes e ON e.examen_id = n.nota_examen_id
		WHERE e.examen_modulo_id IS NOT NULL
		GROUP BY 1, 2
		ORDER BY 1, 2`).Scan(&filas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.KpiAprobacionItem, 0, len(filas))
	for _, f := range filas {
		items = append(items, dto.KpiAprobacionItem{
			ModuloID:  f.ModuloID,
			Tipo:      f.Tipo,
			Total:     f.Total,
			Aprobadas: f.Aprobadas,
			Tasa:      service.TasaSegura(f.Aprobadas, f.Total),
		})
	}

	h.Cache.Set(key, items)
	return helper.JsonOK(c, "", items)
}

/* GET /api/analiticas/kpis/equivalencias */
func (h *AnaliticaController) KpiEquivalencias(c *fiber.Ctx) error {
	key := h.Cache.Key("analiticas/kpis/equivalencias", nil)
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var items []dto.KpiEquivalenciaItem
	if err := h.DB.Raw(`
		SELECT e.examen_modulo_id AS modulo_id,
		       COUNT(*) AS cantidad
		FROM notas n
		JOIN examenes e ON e.examen_id = n.nota_examen_id
		WHERE n.nota_es_equivalencia = TRUE
		GROUP BY 1
		ORDER BY 1`).Scan(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.Cache.Set(key, items)
	return helper.JsonOK(c, "", items)
}

/* GET /api/analiticas/kpis/alertas */
func (h *AnaliticaController) Alertas(c *fiber.Ctx) error {
	key := h.Cache.Key("analiticas/kpis/alertas", nil)
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var estudiantes []emodel.EstudianteModel
	if err := h.DB.
		Where("estudiante_estatus = ?", emodel.EstatusActivo).
		Order("estudiante_apellido, estudiante_nombre").
		Find(&estudiantes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	asistencia, err := h.asistenciaPorEstudiante()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	pendientes, err := h.finalesPendientesPorEstudiante()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	alertas := service.DetectarAlertas(estudiantes, asistencia, pendientes)
	h.Cache.Set(key, alertas)
	return helper.JsonOK(c, "", alertas)
}

func (h *AnaliticaController) asistenciaPorEstudiante() (map[uuid.UUID]dto.TasaAsistenciaItem, error) {
	type fila struct {
		EstudianteID uuid.UUID `gorm:"column:estudiante_id"`
		Total        int       `gorm:"column:total"`
		Presentes    int       `gorm:"column:presentes"`
	}
	var filas []fila
	if err := h.DB.Raw(`
		SELECT asistencia_estudiante_id AS estudiante_id,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE asistencia_presente) AS presentes
		FROM asistencias
		GROUP BY 1`).Scan(&filas).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]dto.TasaAsistenciaItem, len(filas))
	for _, f := range filas {
		out[f.EstudianteID] = dto.TasaAsistenciaItem{
			Total:     f.Total,
			Presentes: f.Presentes,
			Tasa:      service.TasaSegura(f.Presentes, f.Total),
		}
	}
	return out, nil
}

// finalesPendientesPorEstudiante compara, por cada estudiante con
// inscripción activa, los bloques de sus programas contra los bloques con
// final aprobado.
func (h *AnaliticaController) finalesPendientesPorEstudiante() (map[uuid.UUID]int, error) {
	type programaFila struct {
		EstudianteID uuid.UUID `gorm:"column:estudiante_id"`
		ProgramaID   uuid.UUID `gorm:"column:programa_id"`
	}
	var programas []programaFila
	if err := h.DB.Raw(`
		SELECT DISTINCT i.inscripcion_estudiante_id AS estudiante_id,
		       c.cohorte_programa_id AS programa_id
		FROM inscripciones i
		JOIN cohortes c ON c.cohorte_id = i.inscripcion_cohorte_id
		WHERE i.inscripcion_estado = 'ACTIVO'`).Scan(&programas).Error; err != nil {
		return nil, err
	}

	type totalFila struct {
		ProgramaID uuid.UUID `gorm:"column:programa_id"`
		Total      int       `gorm:"column:total"`
	}
	var totales []totalFila
	if err := h.DB.Raw(`
		SELECT bat.bateria_programa_id AS programa_id,
		       COUNT(*) AS total
		FROM bloques b
		JOIN baterias bat ON bat.bateria_id = b.bloque_bateria_id
		GROUP BY 1`).Scan(&totales).Error; err != nil {
		return nil, err
	}
	totalPorPrograma := make(map[uuid.UUID]int, len(totales))
	for _, t := range totales {
		totalPorPrograma[t.ProgramaID] = t.Total
	}

	type aprobadoFila struct {
		EstudianteID uuid.UUID `gorm:"column:estudiante_id"`
		ProgramaID   uuid.UUID `gorm:"column:programa_id"`
		Aprobados    int       `gorm:"column:aprobados"`
	}
	var aprobadas []aprobadoFila
	if err := h.DB.Raw(`
		SELECT n.nota_estudiante_id AS estudiante_id,
		       bat.bateria_programa_id AS programa_id,
		       COUNT(DISTINCT b.bloque_id) AS aprobados
		FROM bloques b
		JOIN baterias bat ON bat.bateria_id = b.bloque_bateria_id
		JOIN examenes e ON e.examen_bloque_id = b.bloque_id
		JOIN notas n ON n.nota_examen_id = e.examen_id
		WHERE n.nota_aprobado = TRUE
		  AND e.examen_tipo IN ('FINAL_VIRTUAL', 'FINAL_SINC', 'EQUIVALENCIA')
		GROUP BY 1, 2`).Scan(&aprobadas).Error; err != nil {
		return nil, err
	}
	type clave struct{ estudianteID, programaID uuid.UUID }
	aprobadosPor := make(map[clave]int, len(aprobadas))
	for _, a := range aprobadas {
		aprobadosPor[clave{a.EstudianteID, a.ProgramaID}] = a.Aprobados
	}

	pendientes := make(map[uuid.UUID]int, len(programas))
	for _, p := range programas {
		total := totalPorPrograma[p.ProgramaID]
		aprobados := aprobadosPor[clave{p.EstudianteID, p.ProgramaID}]
		if total > aprobados {
			pendientes[p.EstudianteID] += total - aprobados
		}
	}
	return pendientes, nil
}
