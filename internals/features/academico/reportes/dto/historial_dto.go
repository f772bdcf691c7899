package dto

// HistorialPivot es la tabla lista para exportar: una fila por estudiante,
// una columna por examen o semana según el tipo de historial. Las celdas sin
// dato van como null.
type HistorialPivot struct {
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}
