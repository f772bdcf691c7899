package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cohorteModel "academico_backend/internals/features/academico/cohortes/model"
	dto "academico_backend/internals/features/academico/programas/dto"
	service "academico_backend/internals/features/academico/programas/service"
	helper "academico_backend/internals/helpers"
)

/* GET /api/estructura?programa=<id>[&cohorte=<id>]
   Árbol completo del programa. Si se pasa una cohorte existente se adjunta
   su resumen; una cohorte inexistente se omite en silencio. */
func (h *ProgramaController) Estructura(c *fiber.Ctx) error {
	programaID, err := helper.ParseUUIDQuery(c, "programa")
	if err != nil {
		return err
	}
	if programaID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "El parámetro 'programa' es requerido")
	}

	in, err := h.cargarEstructura(*programaID)
	if err != nil {
		return err
	}

	if cohorteID, err := helper.ParseUUIDQuery(c, "cohorte"); err == nil && cohorteID != nil {
		var cohorte cohorteModel.CohorteModel
		findErr := h.DB.Preload("BloqueFechas").
			First(&cohorte, "cohorte_id = ?", *cohorteID).Error
		switch {
		case findErr == nil:
			resumen := &dto.CohorteResumen{
				CohorteID:      cohorte.CohorteID,
				CohorteNombre:  cohorte.CohorteNombre,
				ProgramaID:     cohorte.CohorteProgramaID,
				BloqueFechasID: cohorte.CohorteBloqueFechasID,
			}
			if cohorte.BloqueFechas != nil {
				resumen.BloqueFechasNombre = cohorte.BloqueFechas.BloqueFechasNombre
			}
			in.Cohorte = resumen
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// cohorte desconocida: se omite, no es error
		default:
			return fiber.NewError(fiber.StatusInternalServerError, findErr.Error())
		}
	} else if err != nil {
		return err
	}

	return helper.JsonOK(c, "", service.ArmarEstructura(*in))
}
