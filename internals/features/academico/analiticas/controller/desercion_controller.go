package controller

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"academico_backend/internals/configs"
	dto "academico_backend/internals/features/academico/analiticas/dto"
	service "academico_backend/internals/features/academico/analiticas/service"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	imodel "academico_backend/internals/features/academico/inscripciones/model"
	helper "academico_backend/internals/helpers"
)

const (
	limiteCasosInactividad = 50
	limiteGraduados        = 100
)

/* GET /api/analiticas/desercion?regla=estado|inactividad&semanas= */
func (h *AnaliticaController) Desercion(c *fiber.Ctx) error {
	regla := strings.TrimSpace(c.Query("regla", "estado"))
	if regla != "estado" && regla != "inactividad" {
		return fiber.NewError(fiber.StatusBadRequest, "El parámetro regla debe ser 'estado' o 'inactividad'")
	}

	// ventana de inactividad de la regla B, con override por query
	semanas := configs.DropoutInactivityWeeks
	if raw := strings.TrimSpace(c.Query("semanas")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "El parámetro semanas debe ser un entero positivo")
		}
		semanas = n
	}

	key := h.Cache.Key("analiticas/desercion", map[string]string{
		"regla":   regla,
		"semanas": strconv.Itoa(semanas),
	})
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var (
		resp dto.DesercionResponse
		err  error
	)
	if regla == "estado" {
		resp, err = h.desercionPorEstado()
	} else {
		resp, err = h.desercionPorInactividad(semanas)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.Cache.Set(key, resp)
	return helper.JsonOK(c, "", resp)
}

func (h *AnaliticaController) desercionPorEstado() (dto.DesercionResponse, error) {
	var bajas []emodel.EstudianteModel
	if err := h.DB.
		Where("estudiante_estatus = ?", emodel.EstatusBaja).
		Find(&bajas).Error; err != nil {
		return dto.DesercionResponse{}, err
	}
	fechaBaja := make(map[uuid.UUID]time.Time, len(bajas))
	bajaIDs := make([]uuid.UUID, 0, len(bajas))
	for _, e := range bajas {
		fechaBaja[e.EstudianteID] = e.EstudianteUpdatedAt
		bajaIDs = append(bajaIDs, e.EstudianteID)
	}

	q := h.DB.Model(&imodel.InscripcionModel{}).
		Where("inscripcion_estado = ?", imodel.InscripcionPausada)
	if len(bajaIDs) > 0 {
		q = h.DB.Model(&imodel.InscripcionModel{}).
			Where("inscripcion_estado = ? OR inscripcion_estudiante_id IN ?",
				imodel.InscripcionPausada, bajaIDs)
	}

	var inscripciones []imodel.InscripcionModel
	if err := q.Find(&inscripciones).Error; err != nil {
		return dto.DesercionResponse{}, err
	}

	items := make([]service.InscripcionDesercion, 0, len(inscripciones))
	for _, i := range inscripciones {
		it := service.InscripcionDesercion{InscripcionID: i.InscripcionID}
		if fecha, ok := fechaBaja[i.InscripcionEstudianteID]; ok {
			it.EstudianteBaja = true
			it.FechaBajaEstudiante = fecha
		}
		if i.InscripcionEstado == imodel.InscripcionPausada {
			it.Pausada = true
			it.FechaPausa = i.InscripcionUpdatedAt
		}
		items = append(items, it)
	}

	return dto.DesercionResponse{
		Regla: "estado",
		Serie: service.SerieDesercionPorEstado(items),
	}, nil
}

func (h *AnaliticaController) desercionPorInactividad(semanas int) (dto.DesercionResponse, error) {
	// la población en riesgo son los inscriptos, no todo el padrón
	var estudiantes []emodel.EstudianteModel
	if err := h.DB.
		Where("estudiante_estatus = ?", emodel.EstatusActivo).
		Where(`estudiante_id IN (
			SELECT inscripcion_estudiante_id FROM inscripciones WHERE inscripcion_estado = ?)`,
			imodel.InscripcionActiva).
		Order("estudiante_apellido, estudiante_nombre").
		Find(&estudiantes).Error; err != nil {
		return dto.DesercionResponse{}, err
	}

	type ultimaRow struct {
		EstudianteID uuid.UUID `gorm:"column:estudiante_id"`
		Ultima       time.Time `gorm:"column:ultima"`
	}
	var ultimas []ultimaRow
	if err := h.DB.Raw(`
		SELECT asistencia_estudiante_id AS estudiante_id,
		       MAX(asistencia_fecha) AS ultima
		FROM asistencias
		GROUP BY 1`).Scan(&ultimas).Error; err != nil {
		return dto.DesercionResponse{}, err
	}
	ultimaAsistencia := make(map[uuid.UUID]time.Time, len(ultimas))
	for _, u := range ultimas {
		ultimaAsistencia[u.EstudianteID] = u.Ultima
	}

	casos := service.DetectarInactivos(
		estudiantes, ultimaAsistencia, time.Now(),
		semanas, limiteCasosInactividad,
	)
	return dto.DesercionResponse{Regla: "inactividad", Casos: casos}, nil
}

/* GET /api/analiticas/graduacion?programa= */
func (h *AnaliticaController) Graduacion(c *fiber.Ctx) error {
	programaID, err := helper.ParseUUIDQuery(c, "programa")
	if err != nil {
		return err
	}
	if programaID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el parámetro programa")
	}

	key := h.Cache.Key("analiticas/graduacion", map[string]string{"programa": programaID.String()})
	if cached, ok := h.Cache.Get(key); ok {
		return helper.JsonOK(c, "", cached)
	}

	var totalBloques int64
	if err := h.DB.Raw(`
		SELECT COUNT(*)
		FROM bloques b
		JOIN baterias bat ON bat.bateria_id = b.bloque_bateria_id
		WHERE bat.bateria_programa_id = ?`, *programaID).
		Scan(&totalBloques).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	type aprobadosRow struct {
		EstudianteID uuid.UUID `gorm:"column:estudiante_id"`
		Aprobados    int       `gorm:"column:aprobados"`
	}
	var filas []aprobadosRow
	if err := h.DB.Raw(`
		SELECT n.nota_estudiante_id AS estudiante_id,
		       COUNT(DISTINCT b.bloque_id) AS aprobados
		FROM bloques b
		JOIN baterias bat ON bat.bateria_id = b.bloque_bateria_id
		JOIN examenes e ON e.examen_bloque_id = b.bloque_id
		JOIN notas n ON n.nota_examen_id = e.examen_id
		WHERE bat.bateria_programa_id = ?
		  AND n.nota_aprobado = TRUE
		  AND e.examen_tipo IN ('FINAL_VIRTUAL', 'FINAL_SINC', 'EQUIVALENCIA')
		GROUP BY 1`, *programaID).
		Scan(&filas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	bloquesAprobados := make(map[uuid.UUID]int, len(filas))
	candidatoIDs := make([]uuid.UUID, 0, len(filas))
	for _, f := range filas {
		bloquesAprobados[f.EstudianteID] = f.Aprobados
		candidatoIDs = append(candidatoIDs, f.EstudianteID)
	}

	var candidatos []emodel.EstudianteModel
	if len(candidatoIDs) > 0 {
		if err := h.DB.Where("estudiante_id IN ?", candidatoIDs).Find(&candidatos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		sort.Slice(candidatos, func(i, j int) bool {
			if candidatos[i].EstudianteApellido != candidatos[j].EstudianteApellido {
				return candidatos[i].EstudianteApellido < candidatos[j].EstudianteApellido
			}
			return candidatos[i].EstudianteNombre < candidatos[j].EstudianteNombre
		})
	}

	graduados := service.DetectarGraduados(candidatos, int(totalBloques), bloquesAprobados, limiteGraduados)
	resp := dto.GraduacionResponse{
		ProgramaID:   *programaID,
		TotalBloques: int(totalBloques),
		Total:        len(graduados),
		Graduados:    graduados,
	}
	h.Cache.Set(key, resp)
	return helper.JsonOK(c, "", resp)
}
