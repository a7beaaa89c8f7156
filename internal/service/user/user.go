package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	"github.com/credvia/credvia_backend/internal/repo/user"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*repo.User, error)
}

type UserService struct {
	client *repo.Client
}

func New(client *repo.Client) *UserService {
	return &UserService{client: client}
}

// GetByID retrieves a user by ID with their role profile, excluding soft-deleted users
func (s *UserService) GetByID(ctx context.Context, id string) (*repo.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.client.User.Query().
		Where(
			user.ID(uid),
			user.DeletedAtIsNil(),
		).
		WithPatientProfile().
		WithPsychologistProfile().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}
