package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	linksvc "github.com/credvia/credvia_backend/internal/service/link"
	"github.com/credvia/credvia_backend/pkg/reqctx"
)

type LinkHandler struct {
	svc linksvc.Service
}

func NewLinkHandler(svc linksvc.Service) *LinkHandler {
	return &LinkHandler{svc: svc}
}

func mapLinkError(c fiber.Ctx, err error) error {
	var cooldown *linksvc.CooldownError
	if errors.As(err, &cooldown) {
		return badRequest(c, cooldown.Error())
	}

	switch {
	case errors.Is(err, linksvc.ErrLinkNotFound),
		errors.Is(err, linksvc.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, linksvc.ErrNotParticipant),
		errors.Is(err, linksvc.ErrSelfResponse):
		return forbidden(c)
	case errors.Is(err, linksvc.ErrAlreadyLinked),
		errors.Is(err, linksvc.ErrAlreadyRequested),
		errors.Is(err, linksvc.ErrNotPending),
		errors.Is(err, linksvc.ErrSameRole):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func linkActor(id *reqctx.Identity) linksvc.Actor {
	return linksvc.Actor{
		UserID:         id.UserID,
		PatientID:      id.PatientID,
		PsychologistID: id.PsychologistID,
	}
}

// POST /links
//
// Accepts either a target profile id, or an email/whatsapp contact to
// look the counterparty up by.
func (h *LinkHandler) Request(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK {
		return unauthorized(c)
	}

	var body struct {
		TargetID *uuid.UUID `json:"target_id"`
		Email    string     `json:"email"`
		Whatsapp string     `json:"whatsapp"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	actor := linkActor(id)

	if body.TargetID != nil {
		link, err := h.svc.Request(c.Context(), actor, *body.TargetID)
		if err != nil {
			return mapLinkError(c, err)
		}
		return created(c, link)
	}

	if body.Email == "" && body.Whatsapp == "" {
		return badRequest(c, "target_id, email or whatsapp is required")
	}

	link, err := h.svc.RequestByContact(c.Context(), actor, linksvc.RequestByContactRequest{
		Email:    body.Email,
		Whatsapp: body.Whatsapp,
	})
	if err != nil {
		return mapLinkError(c, err)
	}
	return created(c, link)
}

// POST /links/:id/respond
func (h *LinkHandler) Respond(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK {
		return unauthorized(c)
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	var body struct {
		Accept *bool `json:"accept"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Accept == nil {
		return badRequest(c, "accept is required")
	}

	link, err := h.svc.Respond(c.Context(), linkActor(id), linkID, *body.Accept)
	if err != nil {
		return mapLinkError(c, err)
	}
	return ok(c, link)
}

// DELETE /links/:id
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK {
		return unauthorized(c)
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	if err := h.svc.Delete(c.Context(), linkActor(id), linkID); err != nil {
		return mapLinkError(c, err)
	}
	return noContent(c)
}

// GET /links
func (h *LinkHandler) List(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK {
		return unauthorized(c)
	}

	links, err := h.svc.List(c.Context(), linkActor(id))
	if err != nil {
		return mapLinkError(c, err)
	}
	return ok(c, links)
}
