package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Role is the account role carried on the identity.
type Role string

const (
	RolePatient      Role = "patient"
	RolePsychologist Role = "psychologist"
)

// Identity is the resolved caller: the account plus its role profile.
// Exactly one of PatientID / PsychologistID is set, matching Role.
type Identity struct {
	UserID         uuid.UUID
	Role           Role
	PatientID      *uuid.UUID
	PsychologistID *uuid.UUID
}

func (id *Identity) IsPatient() bool {
	return id.Role == RolePatient && id.PatientID != nil
}

func (id *Identity) IsPsychologist() bool {
	return id.Role == RolePsychologist && id.PsychologistID != nil
}

// WithIdentity stores the resolved identity in the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

// IdentityFromContext retrieves the resolved identity from the context.
// Returns nil, false if the request is not authenticated.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	v := ctx.Value(keyIdentity)
	if v == nil {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}

// MustIdentity retrieves the identity from the context.
// Panics if not set. Use only behind the auth middleware.
func MustIdentity(ctx context.Context) *Identity {
	id, ok := IdentityFromContext(ctx)
	if !ok || id == nil {
		panic("reqctx: Identity not found in context")
	}
	return id
}
