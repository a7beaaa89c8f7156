package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/pkg/authorize"
)

// RequirePermission checks the resolved identity against Casbin for the
// resource/action pair. The domain is the patient scope of the request:
// a :patientId route param when present, otherwise the caller's own
// patient profile, otherwise sys.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		domain := authorize.DomainSys
		if pid := c.Params("patientId"); pid != "" {
			if _, err := uuid.Parse(pid); err != nil {
				return fiber.ErrBadRequest
			}
			domain = authorize.PatientDomain(pid)
		} else if id.PatientID != nil {
			domain = authorize.PatientDomain(id.PatientID.String())
		}

		subject := authorize.GroupSubject(id.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
