package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/guide"
)

type GuideHandler struct {
	svc guide.Service
}

func NewGuideHandler(svc guide.Service) *GuideHandler {
	return &GuideHandler{svc: svc}
}

func mapGuideError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, guide.ErrGuideNotFound), errors.Is(err, guide.ErrCompanyNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, guide.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, guide.ErrDuplicateNumber),
		errors.Is(err, guide.ErrGuideHasFacials),
		errors.Is(err, guide.ErrTerminalStatus),
		errors.Is(err, guide.ErrGuideNotActive),
		errors.Is(err, guide.ErrNumberRequired),
		errors.Is(err, guide.ErrInvalidCredits),
		errors.Is(err, guide.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /guides
func (h *GuideHandler) List(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	guides, err := h.svc.List(c.Context(), *id.PatientID)
	if err != nil {
		return mapGuideError(c, err)
	}
	return ok(c, guides)
}

// GET /guides/:id
func (h *GuideHandler) Get(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	guideID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid guide id")
	}

	g, err := h.svc.GetByID(c.Context(), *id.PatientID, guideID)
	if err != nil {
		return mapGuideError(c, err)
	}
	return ok(c, g)
}

// POST /guides
func (h *GuideHandler) Create(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	var body struct {
		Number         string    `json:"number"`
		TotalCredits   int       `json:"total_credits"`
		ExpirationDate time.Time `json:"expiration_date"`
		CompanyID      uuid.UUID `json:"company_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	g, err := h.svc.Create(c.Context(), *id.PatientID, guide.CreateRequest{
		Number:         body.Number,
		TotalCredits:   body.TotalCredits,
		ExpirationDate: body.ExpirationDate,
		CompanyID:      body.CompanyID,
	})
	if err != nil {
		return mapGuideError(c, err)
	}
	return created(c, g)
}

// PATCH /guides/:id
func (h *GuideHandler) Update(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	guideID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid guide id")
	}

	var body struct {
		ExpirationDate *time.Time `json:"expiration_date"`
		Status         *string    `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	g, err := h.svc.Update(c.Context(), *id.PatientID, guideID, guide.UpdateRequest{
		ExpirationDate: body.ExpirationDate,
		Status:         body.Status,
	})
	if err != nil {
		return mapGuideError(c, err)
	}
	return ok(c, g)
}

// DELETE /guides/:id
func (h *GuideHandler) Delete(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	guideID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid guide id")
	}

	if err := h.svc.Delete(c.Context(), *id.PatientID, guideID); err != nil {
		return mapGuideError(c, err)
	}
	return noContent(c)
}
