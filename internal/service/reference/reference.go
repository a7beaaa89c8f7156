package reference

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	entpsych "github.com/credvia/credvia_backend/internal/repo/psychologist"
	entref "github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	entsession "github.com/credvia/credvia_backend/internal/repo/session"
	linksvc "github.com/credvia/credvia_backend/internal/service/link"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name string
}

type BindRequest struct {
	PsychologistID uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.PsychologistReference, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.PsychologistReference, error)

	// Bind attaches a placeholder to a real psychologist and rewrites the
	// patient's historical sessions that used the placeholder without a
	// psychologist. Idempotent for the same psychologist.
	Bind(ctx context.Context, patientID, referenceID uuid.UUID, req BindRequest) (*repo.PsychologistReference, error)

	// Unbind detaches the placeholder and clears psychologist attribution
	// on its sessions. Session history itself is never deleted. Idempotent.
	Unbind(ctx context.Context, patientID, referenceID uuid.UUID) (*repo.PsychologistReference, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type referenceService struct {
	db    *repo.Client
	links linksvc.Service
	log   *slog.Logger
}

func New(db *repo.Client, links linksvc.Service, log *slog.Logger) Service {
	return &referenceService{db: db, links: links, log: log}
}

func (s *referenceService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.PsychologistReference, error) {
	refs, err := s.db.PsychologistReference.Query().
		Where(entref.PatientID(patientID)).
		WithLinkedPsychologist(func(q *repo.PsychologistQuery) { q.WithUser() }).
		Order(entref.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	return refs, nil
}

func (s *referenceService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.PsychologistReference, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	ref, err := s.db.PsychologistReference.Create().
		SetPatientID(patientID).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create reference: %w", err)
	}
	return ref, nil
}

func (s *referenceService) Bind(ctx context.Context, patientID, referenceID uuid.UUID, req BindRequest) (_ *repo.PsychologistReference, err error) {
	ref, err := s.getOwned(ctx, patientID, referenceID)
	if err != nil {
		return nil, err
	}

	if ref.LinkedPsychologistID != nil {
		if *ref.LinkedPsychologistID == req.PsychologistID {
			return ref, nil
		}
		return nil, ErrAlreadyBound
	}

	exists, err := s.db.Psychologist.Query().Where(entpsych.ID(req.PsychologistID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check psychologist: %w", err)
	}
	if !exists {
		return nil, ErrPsychologistNotFound
	}

	linked, err := s.links.IsAccepted(ctx, patientID, req.PsychologistID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNotLinked
	}

	taken, err := s.db.PsychologistReference.Query().
		Where(
			entref.PatientID(patientID),
			entref.LinkedPsychologistID(req.PsychologistID),
			entref.IDNEQ(ref.ID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check duplicate binding: %w", err)
	}
	if taken {
		return nil, ErrPsychologistTaken
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.PsychologistReference.UpdateOneID(ref.ID).
		SetLinkedPsychologistID(req.PsychologistID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("bind reference: %w", err)
	}

	// Attribute past placeholder sessions that never got a psychologist.
	rewritten, err := tx.Session.Update().
		Where(
			entsession.ReferenceID(ref.ID),
			entsession.PsychologistIDIsNil(),
		).
		SetPsychologistID(req.PsychologistID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("rewrite sessions: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.log.Info("reference bound",
		"reference_id", ref.ID,
		"psychologist_id", req.PsychologistID,
		"sessions_rewritten", rewritten,
	)

	return s.db.PsychologistReference.Get(ctx, ref.ID)
}

func (s *referenceService) Unbind(ctx context.Context, patientID, referenceID uuid.UUID) (_ *repo.PsychologistReference, err error) {
	ref, err := s.getOwned(ctx, patientID, referenceID)
	if err != nil {
		return nil, err
	}

	if ref.LinkedPsychologistID == nil {
		return ref, nil
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.PsychologistReference.UpdateOneID(ref.ID).
		ClearLinkedPsychologistID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("unbind reference: %w", err)
	}

	cleared, err := tx.Session.Update().
		Where(entsession.ReferenceID(ref.ID)).
		ClearPsychologistID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("clear session attribution: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.log.Info("reference unbound",
		"reference_id", ref.ID,
		"sessions_cleared", cleared,
	)

	return s.db.PsychologistReference.Get(ctx, ref.ID)
}

func (s *referenceService) getOwned(ctx context.Context, patientID, referenceID uuid.UUID) (*repo.PsychologistReference, error) {
	ref, err := s.db.PsychologistReference.Get(ctx, referenceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("get reference: %w", err)
	}
	if ref.PatientID != patientID {
		return nil, ErrNotOwner
	}
	return ref, nil
}
