package dto

import (
	"time"

	"github.com/google/uuid"

	model "academico_backend/internals/features/academico/estudiantes/model"
)

/* ===================== RESPONSES ===================== */

type EstudianteResponse struct {
	EstudianteID       uuid.UUID `json:"estudiante_id"`
	EstudianteDNI      string    `json:"estudiante_dni"`
	EstudianteNombre   string    `json:"estudiante_nombre"`
	EstudianteApellido string    `json:"estudiante_apellido"`
	EstudianteEmail    string    `json:"estudiante_email,omitempty"`
	EstudianteTelefono string    `json:"estudiante_telefono,omitempty"`
	EstudianteCiudad   string    `json:"estudiante_ciudad,omitempty"`
	EstudianteEstatus  string    `json:"estudiante_estatus"`
	EstudianteCreated  time.Time `json:"estudiante_created_at"`
	EstudianteUpdated  time.Time `json:"estudiante_updated_at"`
}

func FromModel(m model.EstudianteModel) EstudianteResponse {
	return EstudianteResponse{
		EstudianteID:       m.EstudianteID,
		EstudianteDNI:      m.EstudianteDNI,
		EstudianteNombre:   m.EstudianteNombre,
		EstudianteApellido: m.EstudianteApellido,
		EstudianteEmail:    m.EstudianteEmail,
		EstudianteTelefono: m.EstudianteTelefono,
		EstudianteCiudad:   m.EstudianteCiudad,
		EstudianteEstatus:  string(m.EstudianteEstatus),
		EstudianteCreated:  m.EstudianteCreatedAt,
		EstudianteUpdated:  m.EstudianteUpdatedAt,
	}
}

func FromModels(ms []model.EstudianteModel) []EstudianteResponse {
	out := make([]EstudianteResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===================== REQUESTS ===================== */

type CreateEstudianteRequest struct {
	EstudianteDNI      string `json:"estudiante_dni" validate:"required"`
	EstudianteNombre   string `json:"estudiante_nombre" validate:"required"`
	EstudianteApellido string `json:"estudiante_apellido" validate:"required"`
	EstudianteEmail    string `json:"estudiante_email" validate:"omitempty,email"`
	EstudianteTelefono string `json:"estudiante_telefono"`
	EstudianteCiudad   string `json:"estudiante_ciudad"`
}

func (r CreateEstudianteRequest) ToModel() model.EstudianteModel {
	return model.EstudianteModel{
		EstudianteDNI:      r.EstudianteDNI,
		EstudianteNombre:   r.EstudianteNombre,
		EstudianteApellido: r.EstudianteApellido,
		EstudianteEmail:    r.EstudianteEmail,
		EstudianteTelefono: r.EstudianteTelefono,
		EstudianteCiudad:   r.EstudianteCiudad,
		EstudianteEstatus:  model.EstatusActivo,
	}
}

// Update parcial (PATCH/PUT) — punteros para distinguir "vacío" de "sin cambio".
type UpdateEstudianteRequest struct {
	EstudianteDNI      *string `json:"estudiante_dni" validate:"omitempty,min=1"`
	EstudianteNombre   *string `json:"estudiante_nombre" validate:"omitempty,min=1"`
	EstudianteApellido *string `json:"estudiante_apellido" validate:"omitempty,min=1"`
	EstudianteEmail    *string `json:"estudiante_email" validate:"omitempty,email"`
	EstudianteTelefono *string `json:"estudiante_telefono"`
	EstudianteCiudad   *string `json:"estudiante_ciudad"`
	EstudianteEstatus  *string `json:"estudiante_estatus" validate:"omitempty,oneof=Activo Baja"`
}

func (r UpdateEstudianteRequest) ApplyToModel(m *model.EstudianteModel) {
	if r.EstudianteDNI != nil {
		m.EstudianteDNI = *r.EstudianteDNI
	}
	if r.EstudianteNombre != nil {
		m.EstudianteNombre = *r.EstudianteNombre
	}
	if r.EstudianteApellido != nil {
		m.EstudianteApellido = *r.EstudianteApellido
	}
	if r.EstudianteEmail != nil {
		m.EstudianteEmail = *r.EstudianteEmail
	}
	if r.EstudianteTelefono != nil {
		m.EstudianteTelefono = *r.EstudianteTelefono
	}
	if r.EstudianteCiudad != nil {
		m.EstudianteCiudad = *r.EstudianteCiudad
	}
	if r.EstudianteEstatus != nil {
		m.EstudianteEstatus = model.EstatusEstudiante(*r.EstudianteEstatus)
	}
}
