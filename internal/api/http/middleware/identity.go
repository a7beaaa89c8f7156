package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/repo"
	entuser "github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/credvia/credvia_backend/internal/service/user"
	pasetotoken "github.com/credvia/credvia_backend/pkg/paseto"
	"github.com/credvia/credvia_backend/pkg/reqctx"
)

const LocalsIdentity = "identity"

// ResolveIdentity loads the authenticated user's role profile and stores a
// *reqctx.Identity in locals. Must run after AuthRequired.
func ResolveIdentity(users user.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := users.GetByID(c.Context(), claims.UserID.String())
		if err != nil {
			return fiber.ErrUnauthorized
		}

		id := identityFromUser(u)
		if id == nil {
			// account without a role profile cannot act on anything
			return fiber.ErrForbidden
		}

		c.Locals(LocalsIdentity, id)
		return c.Next()
	}
}

// RequireRole rejects callers whose resolved identity is not the given role.
func RequireRole(role reqctx.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if id.Role != role {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}

// IdentityFromFiber retrieves the resolved identity from Fiber locals.
func IdentityFromFiber(c fiber.Ctx) (*reqctx.Identity, bool) {
	v := c.Locals(LocalsIdentity)
	id, ok := v.(*reqctx.Identity)
	return id, ok && id != nil
}

func identityFromUser(u *repo.User) *reqctx.Identity {
	id := &reqctx.Identity{UserID: u.ID}

	switch u.Role {
	case entuser.RolePatient:
		p := u.Edges.PatientProfile
		if p == nil {
			return nil
		}
		id.Role = reqctx.RolePatient
		id.PatientID = &p.ID
	case entuser.RolePsychologist:
		p := u.Edges.PsychologistProfile
		if p == nil {
			return nil
		}
		id.Role = reqctx.RolePsychologist
		id.PsychologistID = &p.ID
	default:
		return nil
	}

	return id
}
