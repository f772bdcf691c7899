package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "academico_backend/internals/features/academico/importaciones/model"
)

type ImportRunResponse struct {
	ImportRunID uuid.UUID      `json:"import_run_id"`
	Tipo        string         `json:"import_run_tipo"`
	Archivo     string         `json:"import_run_archivo"`
	Creados     int            `json:"creados"`
	Omitidos    int            `json:"omitidos"`
	Errores     []string       `json:"errores"`
	Resumen     datatypes.JSON `json:"resumen,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func FromModel(m model.ImportRunModel) ImportRunResponse {
	errores := m.ImportRunErrores
	if errores == nil {
		errores = []string{}
	}
	return ImportRunResponse{
		ImportRunID: m.ImportRunID,
		Tipo:        string(m.ImportRunTipo),
		Archivo:     m.ImportRunArchivo,
		Creados:     m.ImportRunCreados,
		Omitidos:    m.ImportRunOmitidos,
		Errores:     errores,
		Resumen:     m.ImportRunResumen,
		CreatedAt:   m.ImportRunCreatedAt,
	}
}

func FromModels(ms []model.ImportRunModel) []ImportRunResponse {
	out := make([]ImportRunResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
