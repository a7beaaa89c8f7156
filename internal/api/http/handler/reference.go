package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/reference"
)

type ReferenceHandler struct {
	svc reference.Service
}

func NewReferenceHandler(svc reference.Service) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

func mapReferenceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reference.ErrReferenceNotFound),
		errors.Is(err, reference.ErrPsychologistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, reference.ErrNotOwner),
		errors.Is(err, reference.ErrNotLinked):
		return forbidden(c)
	case errors.Is(err, reference.ErrAlreadyBound),
		errors.Is(err, reference.ErrPsychologistTaken),
		errors.Is(err, reference.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /references
func (h *ReferenceHandler) List(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	refs, err := h.svc.List(c.Context(), *id.PatientID)
	if err != nil {
		return mapReferenceError(c, err)
	}
	return ok(c, refs)
}

// POST /references
func (h *ReferenceHandler) Create(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ref, err := h.svc.Create(c.Context(), *id.PatientID, reference.CreateRequest{Name: body.Name})
	if err != nil {
		return mapReferenceError(c, err)
	}
	return created(c, ref)
}

// POST /references/:id/bind
func (h *ReferenceHandler) Bind(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	refID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid reference id")
	}

	var body struct {
		PsychologistID uuid.UUID `json:"psychologist_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PsychologistID == uuid.Nil {
		return badRequest(c, "psychologist_id is required")
	}

	ref, err := h.svc.Bind(c.Context(), *id.PatientID, refID, reference.BindRequest{
		PsychologistID: body.PsychologistID,
	})
	if err != nil {
		return mapReferenceError(c, err)
	}
	return ok(c, ref)
}

// POST /references/:id/unbind
func (h *ReferenceHandler) Unbind(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	refID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid reference id")
	}

	ref, err := h.svc.Unbind(c.Context(), *id.PatientID, refID)
	if err != nil {
		return mapReferenceError(c, err)
	}
	return ok(c, ref)
}
