package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), id.UserID.String())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	resp := fiber.Map{
		"id":                u.ID,
		"name":              u.Name,
		"email":             u.Email,
		"whatsapp":          u.Whatsapp,
		"role":              u.Role,
		"whatsapp_verified": u.WhatsappVerified,
	}
	if id.PatientID != nil {
		resp["patient_id"] = id.PatientID
	}
	if id.PsychologistID != nil {
		resp["psychologist_id"] = id.PsychologistID
	}

	return ok(c, resp)
}
