package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/session"
)

type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func mapSessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrPsychologistNotFound),
		errors.Is(err, session.ErrReferenceNotFound),
		errors.Is(err, session.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrNotLinked),
		errors.Is(err, session.ErrReferenceNotOwned):
		return forbidden(c)
	case errors.Is(err, session.ErrInvalidDuration),
		errors.Is(err, session.ErrCounterpartyRequired),
		errors.Is(err, session.ErrPatientRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type sessionBody struct {
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
	PsychologistID  *uuid.UUID `json:"psychologist_id"`
	ReferenceID     *uuid.UUID `json:"reference_id"`
	PatientID       *uuid.UUID `json:"patient_id"`
}

// POST /sessions  (patient books for themselves)
func (h *SessionHandler) Register(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	var body sessionBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.RegisterAsPatient(c.Context(), *id.PatientID, session.RegisterRequest{
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		PsychologistID:  body.PsychologistID,
		ReferenceID:     body.ReferenceID,
	})
	if err != nil {
		return mapSessionError(c, err)
	}

	return created(c, fiber.Map{
		"session": result.Session,
		"balance": result.Balance,
	})
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	sessions, err := h.svc.ListForPatient(c.Context(), *id.PatientID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sessions)
}

// POST /psychologist/sessions  (psychologist books for a linked patient)
func (h *SessionHandler) RegisterForPatient(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPsychologist() {
		return forbidden(c)
	}

	var body sessionBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.RegisterAsPsychologist(c.Context(), *id.PsychologistID, session.RegisterRequest{
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		PatientID:       body.PatientID,
	})
	if err != nil {
		return mapSessionError(c, err)
	}

	return created(c, fiber.Map{
		"session": result.Session,
		"balance": result.Balance,
	})
}

// GET /psychologist/sessions
func (h *SessionHandler) ListOwn(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPsychologist() {
		return forbidden(c)
	}

	sessions, err := h.svc.ListForPsychologist(c.Context(), *id.PsychologistID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sessions)
}
