package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	entcompany "github.com/credvia/credvia_backend/internal/repo/company"
)

type CreateRequest struct {
	Name string
}

type Service interface {
	List(ctx context.Context) ([]*repo.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Company, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Company, error)

	// EnsureDefaults seeds the well-known benefit companies. Existing
	// rows are left alone, so it is safe to run on every startup.
	EnsureDefaults(ctx context.Context) error
}

// DefaultCompanies are the benefit providers known at launch.
var DefaultCompanies = []string{
	"Vivae",
	"Allya",
}

type companyService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &companyService{db: db}
}

func (s *companyService) List(ctx context.Context) ([]*repo.Company, error) {
	companies, err := s.db.Company.Query().
		Order(entcompany.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Company, error) {
	c, err := s.db.Company.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func (s *companyService) Create(ctx context.Context, req CreateRequest) (*repo.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c, err := s.db.Company.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateCompany
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

func (s *companyService) EnsureDefaults(ctx context.Context) error {
	for _, name := range DefaultCompanies {
		exists, err := s.db.Company.Query().
			Where(entcompany.NameEqualFold(name)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check company %q: %w", name, err)
		}
		if exists {
			continue
		}
		if _, err := s.db.Company.Create().SetName(name).Save(ctx); err != nil {
			if repo.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("seed company %q: %w", name, err)
		}
	}
	return nil
}
