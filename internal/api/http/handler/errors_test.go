package handler

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/service/facial"
	"github.com/credvia/credvia_backend/internal/service/guide"
	linksvc "github.com/credvia/credvia_backend/internal/service/link"
	"github.com/credvia/credvia_backend/internal/service/reference"
)

// statusOf runs an error through a mapper inside a real fiber handler and
// returns the HTTP status it produces.
func statusOf(t *testing.T, mapper func(fiber.Ctx, error) error, err error) int {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return mapper(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	if testErr != nil {
		t.Fatalf("app.Test: %v", testErr)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestErrorStatusTiers(t *testing.T) {
	tests := []struct {
		name   string
		mapper func(fiber.Ctx, error) error
		err    error
		want   int
	}{
		// Business-rule violations answer 400 with the rule spelled out.
		{"no eligible guide", mapFacialError, facial.ErrNoEligibleGuide, fiber.StatusBadRequest},
		{"expired guide", mapFacialError, facial.ErrGuideExpired, fiber.StatusBadRequest},
		{"exhausted guide", mapFacialError, facial.ErrGuideCompleted, fiber.StatusBadRequest},
		{"past-due guide", mapFacialError, facial.ErrGuidePastDue, fiber.StatusBadRequest},
		{"duplicate guide number", mapGuideError, guide.ErrDuplicateNumber, fiber.StatusBadRequest},
		{"guide has check-ins", mapGuideError, guide.ErrGuideHasFacials, fiber.StatusBadRequest},
		{"terminal guide status", mapGuideError, guide.ErrTerminalStatus, fiber.StatusBadRequest},
		{"already linked", mapLinkError, linksvc.ErrAlreadyLinked, fiber.StatusBadRequest},
		{"pending request exists", mapLinkError, linksvc.ErrAlreadyRequested, fiber.StatusBadRequest},
		{"request already answered", mapLinkError, linksvc.ErrNotPending, fiber.StatusBadRequest},
		{"rejection cooldown", mapLinkError, &linksvc.CooldownError{Remaining: 72 * time.Hour}, fiber.StatusBadRequest},
		{"reference already bound", mapReferenceError, reference.ErrAlreadyBound, fiber.StatusBadRequest},
		{"psychologist already bound", mapReferenceError, reference.ErrPsychologistTaken, fiber.StatusBadRequest},

		// Ownership and participation stay 403.
		{"foreign guide", mapFacialError, facial.ErrNotOwner, fiber.StatusForbidden},
		{"not a participant", mapLinkError, linksvc.ErrNotParticipant, fiber.StatusForbidden},
		{"requester answering own request", mapLinkError, linksvc.ErrSelfResponse, fiber.StatusForbidden},
		{"foreign reference", mapReferenceError, reference.ErrNotOwner, fiber.StatusForbidden},

		// Missing records stay 404.
		{"unknown guide", mapFacialError, facial.ErrGuideNotFound, fiber.StatusNotFound},
		{"unknown link", mapLinkError, linksvc.ErrLinkNotFound, fiber.StatusNotFound},
		{"unknown reference", mapReferenceError, reference.ErrReferenceNotFound, fiber.StatusNotFound},

		// Anything unrecognized is a 500.
		{"unexpected error", mapGuideError, errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusOf(t, tt.mapper, tt.err)
			if got != tt.want {
				t.Errorf("status for %v = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
