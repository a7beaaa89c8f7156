package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	entpatient "github.com/credvia/credvia_backend/internal/repo/patient"
	entpsych "github.com/credvia/credvia_backend/internal/repo/psychologist"
	entsession "github.com/credvia/credvia_backend/internal/repo/session"
	linksvc "github.com/credvia/credvia_backend/internal/service/link"
)

// CreditCost maps a session duration in minutes to its credit price.
// Returns 0 for unsupported durations.
func CreditCost(durationMinutes int) int {
	switch durationMinutes {
	case 30:
		return 1
	case 50:
		return 2
	}
	return 0
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	ScheduledAt     time.Time
	DurationMinutes int

	// Patient path: exactly one of these.
	PsychologistID *uuid.UUID
	ReferenceID    *uuid.UUID

	// Psychologist path: the patient the session belongs to.
	PatientID *uuid.UUID
}

type RegisterResult struct {
	Session *repo.Session
	Balance int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// RegisterAsPatient books a session against the patient's own balance,
	// pointing at a linked psychologist or an owned reference placeholder.
	RegisterAsPatient(ctx context.Context, patientID uuid.UUID, req RegisterRequest) (*RegisterResult, error)

	// RegisterAsPsychologist books a session on behalf of a linked patient,
	// attributed to the acting psychologist.
	RegisterAsPsychologist(ctx context.Context, psychologistID uuid.UUID, req RegisterRequest) (*RegisterResult, error)

	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Session, error)
	ListForPsychologist(ctx context.Context, psychologistID uuid.UUID) ([]*repo.Session, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type sessionService struct {
	db    *repo.Client
	links linksvc.Service
	log   *slog.Logger
}

func New(db *repo.Client, links linksvc.Service, log *slog.Logger) Service {
	return &sessionService{db: db, links: links, log: log}
}

func (s *sessionService) RegisterAsPatient(ctx context.Context, patientID uuid.UUID, req RegisterRequest) (*RegisterResult, error) {
	cost := CreditCost(req.DurationMinutes)
	if cost == 0 {
		return nil, ErrInvalidDuration
	}

	if (req.PsychologistID == nil) == (req.ReferenceID == nil) {
		return nil, ErrCounterpartyRequired
	}

	if req.PsychologistID != nil {
		exists, err := s.db.Psychologist.Query().Where(entpsych.ID(*req.PsychologistID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check psychologist: %w", err)
		}
		if !exists {
			return nil, ErrPsychologistNotFound
		}
		linked, err := s.links.IsAccepted(ctx, patientID, *req.PsychologistID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, ErrNotLinked
		}
	}

	if req.ReferenceID != nil {
		ref, err := s.db.PsychologistReference.Get(ctx, *req.ReferenceID)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrReferenceNotFound
			}
			return nil, fmt.Errorf("get reference: %w", err)
		}
		if ref.PatientID != patientID {
			return nil, ErrReferenceNotOwned
		}
		// A bound placeholder resolves to its psychologist immediately.
		if ref.LinkedPsychologistID != nil {
			req.PsychologistID = ref.LinkedPsychologistID
		}
	}

	return s.register(ctx, patientID, req, cost, entsession.RegisteredByPatient)
}

func (s *sessionService) RegisterAsPsychologist(ctx context.Context, psychologistID uuid.UUID, req RegisterRequest) (*RegisterResult, error) {
	cost := CreditCost(req.DurationMinutes)
	if cost == 0 {
		return nil, ErrInvalidDuration
	}
	if req.PatientID == nil {
		return nil, ErrPatientRequired
	}

	exists, err := s.db.Patient.Query().Where(entpatient.ID(*req.PatientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	linked, err := s.links.IsAccepted(ctx, *req.PatientID, psychologistID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNotLinked
	}

	req.PsychologistID = &psychologistID
	req.ReferenceID = nil
	return s.register(ctx, *req.PatientID, req, cost, entsession.RegisteredByPsychologist)
}

// register writes the session and debits the balance atomically. There
// is no floor check: a negative balance is a visible debt, not an error.
func (s *sessionService) register(ctx context.Context, patientID uuid.UUID, req RegisterRequest, cost int, by entsession.RegisteredBy) (_ *RegisterResult, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	create := tx.Session.Create().
		SetPatientID(patientID).
		SetScheduledAt(req.ScheduledAt).
		SetDurationMinutes(req.DurationMinutes).
		SetCreditsUsed(cost).
		SetRegisteredBy(by)
	if req.PsychologistID != nil {
		create = create.SetPsychologistID(*req.PsychologistID)
	}
	if req.ReferenceID != nil {
		create = create.SetReferenceID(*req.ReferenceID)
	}

	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	err = tx.Patient.Update().
		Where(entpatient.ID(patientID)).
		AddBalance(-cost).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("debit balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("reload patient: %w", err)
	}

	s.log.Info("session registered",
		"session_id", sess.ID,
		"patient_id", patientID,
		"credits_used", cost,
		"balance", p.Balance,
	)

	return &RegisterResult{Session: sess, Balance: p.Balance}, nil
}

func (s *sessionService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Session, error) {
	sessions, err := s.db.Session.Query().
		Where(entsession.PatientID(patientID)).
		WithPsychologist(func(q *repo.PsychologistQuery) { q.WithUser() }).
		WithReference().
		Order(entsession.ByScheduledAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListForPsychologist(ctx context.Context, psychologistID uuid.UUID) ([]*repo.Session, error) {
	sessions, err := s.db.Session.Query().
		Where(entsession.PsychologistID(psychologistID)).
		WithPatient(func(q *repo.PatientQuery) { q.WithUser() }).
		Order(entsession.ByScheduledAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
