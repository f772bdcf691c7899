package dto

import "github.com/google/uuid"

// SerieMensualItem es un punto de una serie temporal agrupada por mes
// (formato YYYY-MM).
type SerieMensualItem struct {
	Mes      string `json:"mes"`
	Cantidad int    `json:"cantidad"`
}

// InscripcionesAnaliticaResponse trae el total bajo los filtros pedidos y,
// si se agrupa por mes, la serie temporal.
type InscripcionesAnaliticaResponse struct {
	Total int64              `json:"total"`
	Serie []SerieMensualItem `json:"serie,omitempty"`
}

// las tasas van en [0,1]; el denominador cero da 0
type TasaAsistenciaItem struct {
	Clave     string  `json:"clave"`
	Total     int     `json:"total"`
	Presentes int     `json:"presentes"`
	Tasa      float64 `json:"tasa"`
}

type AsistenciaAnaliticaResponse struct {
	Total     int                  `json:"total"`
	Presentes int                  `json:"presentes"`
	Tasa      float64              `json:"tasa"`
	Grupos    []TasaAsistenciaItem `json:"grupos"`
}

type TasaAprobacionItem struct {
	Tipo      string  `json:"tipo"`
	Total     int     `json:"total"`
	Aprobadas int     `json:"aprobadas"`
	Tasa      float64 `json:"tasa"`
}

type HistogramaItem struct {
	Calificacion int `json:"calificacion"`
	Cantidad     int `json:"cantidad"`
}

type NotasAnaliticaResponse struct {
	Total      int                  `json:"total"`
	Aprobadas  int                  `json:"aprobadas"`
	Tasa       float64              `json:"tasa"`
	PorTipo    []TasaAprobacionItem `json:"por_tipo"`
	Histograma []HistogramaItem     `json:"histograma"`
}

type DesercionCaso struct {
	EstudianteID uuid.UUID `json:"estudiante_id"`
	Nombre       string    `json:"nombre"`
	DNI          string    `json:"dni"`
	UltimaFecha  string    `json:"ultima_asistencia,omitempty"`
}

type DesercionResponse struct {
	Regla string             `json:"regla"`
	Serie []SerieMensualItem `json:"serie,omitempty"`
	Casos []DesercionCaso    `json:"casos,omitempty"`
}

type GraduadoItem struct {
	EstudianteID     uuid.UUID `json:"estudiante_id"`
	Nombre           string    `json:"nombre"`
	DNI              string    `json:"dni"`
	BloquesAprobados int       `json:"bloques_aprobados"`
}

type GraduacionResponse struct {
	ProgramaID   uuid.UUID      `json:"programa_id"`
	TotalBloques int            `json:"total_bloques"`
	Total        int            `json:"total_graduados"`
	Graduados    []GraduadoItem `json:"graduados"`
}

// ProgramaChartItem alimenta el gráfico de estudiantes por programa del
// dashboard.
type ProgramaChartItem struct {
	Programa    string `json:"programa"`
	Estudiantes int    `json:"estudiantes"`
}

type DashboardResponse struct {
	EstudiantesActivos   int64               `json:"estudiantes_activos"`
	EstudiantesEgresados int64               `json:"estudiantes_egresados"`
	InscripcionesActivas int64               `json:"inscripciones_activas"`
	ProgramasActivos     int64               `json:"programas_activos"`
	TasaAprobacion       float64             `json:"tasa_aprobacion"`
	TasaAsistencia       float64             `json:"tasa_asistencia"`
	ProgramasChart       []ProgramaChartItem `json:"programas_chart"`
}

type AlertaItem struct {
	EstudianteID uuid.UUID `json:"estudiante_id"`
	Nombre       string    `json:"nombre"`
	DNI          string    `json:"dni"`
	Motivos      []string  `json:"motivos"`
}

// KpiInscriptosItem cuenta inscripciones por (programa, cohorte).
type KpiInscriptosItem struct {
	ProgramaCodigo string `json:"programa_codigo"`
	Cohorte        string `json:"cohorte"`
	Inscriptos     int    `json:"inscriptos"`
}

type KpiAprobacionItem struct {
	ModuloID  uuid.UUID `json:"modulo_id"`
	Tipo      string    `json:"tipo"`
	Total     int       `json:"total"`
	Aprobadas int       `json:"aprobadas"`
	Tasa      float64   `json:"tasa"`
}

type KpiEquivalenciaItem struct {
	ModuloID uuid.UUID `json:"modulo_id"`
	Cantidad int       `json:"cantidad"`
}
