package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/internal/service/activity"
	"github.com/credvia/credvia_backend/internal/service/guide"
)

type ActivityHandler struct {
	svc    activity.Service
	guides guide.Service
}

func NewActivityHandler(svc activity.Service, guides guide.Service) *ActivityHandler {
	return &ActivityHandler{svc: svc, guides: guides}
}

// GET /activities?start_date=&end_date=&types=
func (h *ActivityHandler) Timeline(c fiber.Ctx) error {
	id, idOK := middleware.IdentityFromFiber(c)
	if !idOK || !id.IsPatient() {
		return forbidden(c)
	}

	// Expire overdue guides first so their log entries show up.
	if err := h.guides.SweepExpired(c.Context(), *id.PatientID); err != nil {
		return internalError(c)
	}

	var filter activity.Filter
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return badRequest(c, "start_date must be YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return badRequest(c, "end_date must be YYYY-MM-DD")
		}
		filter.EndDate = &t
	}
	filter.Types = activity.ParseTypes(c.Query("types"))

	events, err := h.svc.Timeline(c.Context(), *id.PatientID, filter)
	if err != nil {
		return internalError(c)
	}
	return ok(c, events)
}
