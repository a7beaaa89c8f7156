package patient

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	entguide "github.com/credvia/credvia_backend/internal/repo/guide"
	entlink "github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	entpatient "github.com/credvia/credvia_backend/internal/repo/patient"
	entsession "github.com/credvia/credvia_backend/internal/repo/session"
	entuser "github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/credvia/credvia_backend/pkg/util/phone"
)

const recentSessionCount = 5

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Balance is a patient's current credit position.
type Balance struct {
	PatientID uuid.UUID `json:"patientId"`
	Balance   int       `json:"balance"`
}

// Overview is what a linked psychologist sees about one of their patients.
type Overview struct {
	Patient        *repo.Patient   `json:"patient"`
	Balance        int             `json:"balance"`
	ActiveGuides   int             `json:"activeGuides"`
	RecentSessions []*repo.Session `json:"recentSessions"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	GetBalance(ctx context.Context, patientID uuid.UUID) (*Balance, error)

	// ListForPsychologist returns an overview of every patient the
	// psychologist holds an accepted link with.
	ListForPsychologist(ctx context.Context, psychologistID uuid.UUID) ([]Overview, error)

	// LookupByContact finds a patient by email or whatsapp number. The
	// caller must hold an accepted link with the resulting patient.
	LookupByContact(ctx context.Context, psychologistID uuid.UUID, contact string) (*Overview, error)

	// GuideByNumber resolves a patient's guide by its business number,
	// gated on an accepted link.
	GuideByNumber(ctx context.Context, psychologistID, patientID uuid.UUID, number string) (*repo.Guide, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetBalance(ctx context.Context, patientID uuid.UUID) (*Balance, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &Balance{PatientID: p.ID, Balance: p.Balance}, nil
}

func (s *patientService) ListForPsychologist(ctx context.Context, psychologistID uuid.UUID) ([]Overview, error) {
	links, err := s.db.PatientPsychologistLink.Query().
		Where(
			entlink.PsychologistID(psychologistID),
			entlink.StatusEQ(entlink.StatusAccepted),
		).
		WithPatient(func(q *repo.PatientQuery) { q.WithUser() }).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	overviews := make([]Overview, 0, len(links))
	for _, l := range links {
		p := l.Edges.Patient
		if p == nil {
			continue
		}
		ov, err := s.overview(ctx, p)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, *ov)
	}
	return overviews, nil
}

func (s *patientService) LookupByContact(ctx context.Context, psychologistID uuid.UUID, contact string) (*Overview, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil, ErrInvalidContact
	}

	q := s.db.User.Query().Where(entuser.DeletedAtIsNil())
	if strings.Contains(contact, "@") {
		q = q.Where(entuser.EmailEqualFold(strings.ToLower(contact)))
	} else {
		normalized, perr := phone.Normalize(contact)
		if perr != nil {
			return nil, ErrInvalidContact
		}
		q = q.Where(entuser.Whatsapp(normalized))
	}

	u, err := q.WithPatientProfile().Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	p := u.Edges.PatientProfile
	if p == nil {
		return nil, ErrPatientNotFound
	}

	linked, err := s.isLinked(ctx, p.ID, psychologistID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNotLinked
	}

	p.Edges.User = u
	return s.overview(ctx, p)
}

func (s *patientService) GuideByNumber(ctx context.Context, psychologistID, patientID uuid.UUID, number string) (*repo.Guide, error) {
	linked, err := s.isLinked(ctx, patientID, psychologistID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNotLinked
	}

	g, err := s.db.Guide.Query().
		Where(
			entguide.PatientID(patientID),
			entguide.Number(strings.TrimSpace(number)),
		).
		WithCompany().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("get guide: %w", err)
	}
	return g, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *patientService) isLinked(ctx context.Context, patientID, psychologistID uuid.UUID) (bool, error) {
	ok, err := s.db.PatientPsychologistLink.Query().
		Where(
			entlink.PatientID(patientID),
			entlink.PsychologistID(psychologistID),
			entlink.StatusEQ(entlink.StatusAccepted),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check link: %w", err)
	}
	return ok, nil
}

func (s *patientService) overview(ctx context.Context, p *repo.Patient) (*Overview, error) {
	activeGuides, err := s.db.Guide.Query().
		Where(
			entguide.PatientID(p.ID),
			entguide.StatusEQ(entguide.StatusActive),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active guides: %w", err)
	}

	recent, err := s.db.Session.Query().
		Where(entsession.PatientID(p.ID)).
		Order(entsession.ByScheduledAt(sql.OrderDesc())).
		Limit(recentSessionCount).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}

	return &Overview{
		Patient:        p,
		Balance:        p.Balance,
		ActiveGuides:   activeGuides,
		RecentSessions: recent,
	}, nil
}
