package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =====================================================
   Árbol programa → baterías → bloques → módulos.
   Read model del detalle de programa y del endpoint
   /estructura. Cada nivel posee la colección ordenada
   del siguiente; las correlativas quedan fuera del
   árbol (son un overlay m2m consultado aparte).
===================================================== */

type ExamenResumen struct {
	ExamenID    uuid.UUID `json:"examen_id"`
	ExamenTipo  string    `json:"examen_tipo"`
	ExamenFecha time.Time `json:"examen_fecha"`
	ExamenPeso  float64   `json:"examen_peso"`
}

type ModuloEstructura struct {
	ModuloID          uuid.UUID       `json:"modulo_id"`
	ModuloNombre      string          `json:"modulo_nombre"`
	ModuloOrden       int             `json:"modulo_orden"`
	ModuloFechaInicio *time.Time      `json:"modulo_fecha_inicio,omitempty"`
	ModuloFechaFin    *time.Time      `json:"modulo_fecha_fin,omitempty"`
	ModuloEsPractica  bool            `json:"modulo_es_practica"`
	AsistenciaReqPrac bool            `json:"modulo_asistencia_requerida_practica"`
	Examenes          []ExamenResumen `json:"examenes"`
}

type BloqueEstructura struct {
	BloqueID        uuid.UUID          `json:"bloque_id"`
	BloqueNombre    string             `json:"bloque_nombre"`
	BloqueOrden     int                `json:"bloque_orden"`
	Modulos         []ModuloEstructura `json:"modulos"`
	ExamenesFinales []ExamenResumen    `json:"examenes_finales"`
}

type BateriaEstructura struct {
	BateriaID     uuid.UUID          `json:"bateria_id"`
	BateriaNombre string             `json:"bateria_nombre"`
	BateriaOrden  int                `json:"bateria_orden"`
	Bloques       []BloqueEstructura `json:"bloques"`
}

type CohorteResumen struct {
	CohorteID          uuid.UUID `json:"cohorte_id"`
	CohorteNombre      string    `json:"cohorte_nombre"`
	ProgramaID         uuid.UUID `json:"programa_id"`
	BloqueFechasID     uuid.UUID `json:"bloque_fechas_id"`
	BloqueFechasNombre string    `json:"bloque_fechas_nombre"`
}

type ProgramaEstructuraResponse struct {
	ProgramaID     uuid.UUID           `json:"programa_id"`
	ProgramaCodigo string              `json:"programa_codigo"`
	ProgramaNombre string              `json:"programa_nombre"`
	ProgramaActivo bool                `json:"programa_activo"`
	Baterias       []BateriaEstructura `json:"baterias"`
	Cohorte        *CohorteResumen     `json:"cohorte,omitempty"`
}

/* ============== Correlativas check ============== */

type BloqueFaltante struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
}

type CorrelativasResponse struct {
	RequisitosCumplidos bool             `json:"requisitos_cumplidos"`
	BloquesFaltantes    []BloqueFaltante `json:"bloques_faltantes,omitempty"`
}
