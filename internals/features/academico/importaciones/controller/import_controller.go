package controller

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academico_backend/internals/configs"
	aservice "academico_backend/internals/features/academico/analiticas/service"
	dto "academico_backend/internals/features/academico/importaciones/dto"
	model "academico_backend/internals/features/academico/importaciones/model"
	service "academico_backend/internals/features/academico/importaciones/service"
	helper "academico_backend/internals/helpers"
)

type ImportController struct {
	DB    *gorm.DB
	Cache *aservice.Cache
}

func NewImportController(db *gorm.DB, cache *aservice.Cache) *ImportController {
	return &ImportController{DB: db, Cache: cache}
}

/* GET /api/importaciones */
func (h *ImportController) List(c *fiber.Ctx) error {
	var rows []model.ImportRunModel
	if err := h.DB.Order("import_run_created_at DESC").Limit(100).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows), nil)
}

/* POST /api/importaciones/inscripciones */
func (h *ImportController) Inscripciones(c *fiber.Ctx) error {
	return h.procesar(c, model.ImportInscripciones, func(ruta, _ string) (service.ResumenImport, error) {
		return h.desdeArchivo(ruta, service.ImportarInscripciones)
	})
}

/* POST /api/importaciones/asistencias */
func (h *ImportController) Asistencias(c *fiber.Ctx) error {
	return h.procesar(c, model.ImportAsistencias, func(ruta, nombre string) (service.ResumenImport, error) {
		archivo, err := os.Open(ruta)
		if err != nil {
			return service.ResumenImport{}, err
		}
		defer archivo.Close()
		return service.ImportarAsistencias(h.DB, archivo, nombre)
	})
}

/* POST /api/importaciones/notas */
func (h *ImportController) Notas(c *fiber.Ctx) error {
	return h.procesar(c, model.ImportNotas, func(ruta, _ string) (service.ResumenImport, error) {
		return h.desdeArchivo(ruta, service.ImportarNotas)
	})
}

// procesar maneja el ciclo completo de un import: guardar el multipart en
// disco, parsearlo, registrar la corrida y vaciar el cache de analíticas.
func (h *ImportController) procesar(
	c *fiber.Ctx,
	tipo model.TipoImport,
	importar func(ruta, nombre string) (service.ResumenImport, error),
) error {
	encabezado, err := c.FormFile("archivo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el archivo CSV (campo 'archivo')")
	}

	ruta := filepath.Join(configs.ImportDir, uuid.NewString()+".csv")
	if err := c.SaveFile(encabezado, ruta); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el archivo: "+err.Error())
	}
	defer os.Remove(ruta)

	resumen, err := importar(ruta, encabezado.Filename)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error procesando el archivo: "+err.Error())
	}

	corrida := service.NuevaCorrida(tipo, encabezado.Filename, resumen)
	if err := h.DB.Create(&corrida).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// los agregados precalculados quedaron viejos
	h.Cache.Flush()

	return helper.JsonOK(c, "Importación procesada", resumen)
}

func (h *ImportController) desdeArchivo(
	ruta string,
	importar func(*gorm.DB, io.Reader) (service.ResumenImport, error),
) (service.ResumenImport, error) {
	archivo, err := os.Open(ruta)
	if err != nil {
		return service.ResumenImport{}, err
	}
	defer archivo.Close()
	return importar(h.DB, archivo)
}
