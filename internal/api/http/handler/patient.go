package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/guide"
	"github.com/credvia/credvia_backend/internal/service/patient"
)

type PatientHandler struct {
	svc    patient.Service
	guides guide.Service
}

func NewPatientHandler(svc patient.Service, guides guide.Service) *PatientHandler {
	return &PatientHandler{svc: svc, guides: guides}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrGuideNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNotLinked):
		return forbidden(c)
	case errors.Is(err, patient.ErrInvalidContact):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /balance  (patient's own position)
func (h *PatientHandler) Balance(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	// Sweep first so forfeited credits never show as spendable guides.
	if err := h.guides.SweepExpired(c.Context(), *id.PatientID); err != nil {
		return internalError(c)
	}

	balance, err := h.svc.GetBalance(c.Context(), *id.PatientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, balance)
}

// GET /psychologist/patients
func (h *PatientHandler) ListMine(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPsychologist() {
		return forbidden(c)
	}

	overviews, err := h.svc.ListForPsychologist(c.Context(), *id.PsychologistID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, overviews)
}

// GET /psychologist/patients/lookup?contact=
func (h *PatientHandler) Lookup(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPsychologist() {
		return forbidden(c)
	}

	contact := c.Query("contact")
	overview, err := h.svc.LookupByContact(c.Context(), *id.PsychologistID, contact)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, overview)
}

// GET /psychologist/patients/:patientId/guides/:number
func (h *PatientHandler) GuideByNumber(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPsychologist() {
		return forbidden(c)
	}

	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	g, err := h.svc.GuideByNumber(c.Context(), *id.PsychologistID, patientID, c.Params("number"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, g)
}
