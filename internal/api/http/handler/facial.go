package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/facial"
)

type FacialHandler struct {
	svc facial.Service
}

func NewFacialHandler(svc facial.Service) *FacialHandler {
	return &FacialHandler{svc: svc}
}

func mapFacialError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, facial.ErrGuideNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, facial.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, facial.ErrNoEligibleGuide),
		errors.Is(err, facial.ErrGuideExpired),
		errors.Is(err, facial.ErrGuideCompleted),
		errors.Is(err, facial.ErrGuidePastDue):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /facials
func (h *FacialHandler) CheckIn(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	var body struct {
		GuideID *uuid.UUID `json:"guide_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.CheckIn(c.Context(), *id.PatientID, facial.CheckInRequest{
		GuideID: body.GuideID,
	})
	if err != nil {
		return mapFacialError(c, err)
	}

	resp := fiber.Map{
		"record":  result.Record,
		"guide":   result.Guide,
		"balance": result.Balance,
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	return created(c, resp)
}

// GET /facials
func (h *FacialHandler) List(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	records, err := h.svc.List(c.Context(), *id.PatientID)
	if err != nil {
		return mapFacialError(c, err)
	}
	return ok(c, records)
}
