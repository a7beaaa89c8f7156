package facial

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/credvia/credvia_backend/internal/repo"
	entfacial "github.com/credvia/credvia_backend/internal/repo/facialrecord"
	entguide "github.com/credvia/credvia_backend/internal/repo/guide"
	entpatient "github.com/credvia/credvia_backend/internal/repo/patient"
	guidesvc "github.com/credvia/credvia_backend/internal/service/guide"
)

// SameDayWarning is returned alongside a successful check-in when the
// patient already checked in earlier the same day. Advisory only.
const SameDayWarning = "a check-in was already registered today"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CheckInRequest struct {
	// GuideID pins the check-in to a specific guide. When nil the oldest
	// eligible guide is used (FIFO).
	GuideID *uuid.UUID
}

type CheckInResult struct {
	Record  *repo.FacialRecord
	Guide   *repo.Guide
	Balance int
	Warning string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CheckIn(ctx context.Context, patientID uuid.UUID, req CheckInRequest) (*CheckInResult, error)
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.FacialRecord, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type facialService struct {
	db     *repo.Client
	guides guidesvc.Service
	log    *slog.Logger
}

func New(db *repo.Client, guides guidesvc.Service, log *slog.Logger) Service {
	return &facialService{db: db, guides: guides, log: log}
}

func (s *facialService) CheckIn(ctx context.Context, patientID uuid.UUID, req CheckInRequest) (_ *CheckInResult, err error) {
	if err := s.guides.SweepExpired(ctx, patientID); err != nil {
		return nil, err
	}

	now := time.Now()

	var g *repo.Guide
	if req.GuideID != nil {
		g, err = s.validateExplicitGuide(ctx, patientID, *req.GuideID, now)
	} else {
		g, err = s.pickFIFOGuide(ctx, patientID, now)
	}
	if err != nil {
		return nil, err
	}

	warning := ""
	dup, err := s.hasCheckInToday(ctx, patientID, now)
	if err != nil {
		return nil, err
	}
	if dup {
		warning = SameDayWarning
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

	rec, err := tx.FacialRecord.Create().
		SetPatientID(patientID).
		SetGuideID(g.ID).
		SetPerformedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create facial record: %w", err)
	}

	// Consume one credit; the status guard keeps a raced guide from
	// going over its total.
	n, err := tx.Guide.Update().
		Where(
			entguide.ID(g.ID),
			entguide.StatusEQ(entguide.StatusActive),
			entguide.UsedCreditsLT(g.TotalCredits),
		).
		AddUsedCredits(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("consume credit: %w", err)
	}
	if n == 0 {
		err = ErrGuideCompleted
		return nil, err
	}

	// Flip off the stored counter, not the pre-transaction snapshot;
	// racing check-ins may each hold a stale used count.
	_, err = tx.Guide.Update().
		Where(entguide.ID(g.ID), entguide.UsedCreditsGTE(g.TotalCredits)).
		SetStatus(entguide.StatusCompleted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete guide: %w", err)
	}

	err = tx.Patient.Update().
		Where(entpatient.ID(patientID)).
		AddBalance(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("credit balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("reload patient: %w", err)
	}
	updated, err := s.db.Guide.Get(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("reload guide: %w", err)
	}

	s.log.Info("facial check-in",
		"patient_id", patientID,
		"guide_id", g.ID,
		"balance", p.Balance,
	)

	return &CheckInResult{
		Record:  rec,
		Guide:   updated,
		Balance: p.Balance,
		Warning: warning,
	}, nil
}

func (s *facialService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.FacialRecord, error) {
	recs, err := s.db.FacialRecord.Query().
		Where(entfacial.PatientID(patientID)).
		WithGuide(func(q *repo.GuideQuery) {
			q.WithCompany()
		}).
		Order(entfacial.ByPerformedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facials: %w", err)
	}
	return recs, nil
}

// validateExplicitGuide checks an explicitly chosen guide and maps each
// failure mode to its own error so handlers can explain exactly why.
func (s *facialService) validateExplicitGuide(ctx context.Context, patientID, guideID uuid.UUID, now time.Time) (*repo.Guide, error) {
	g, err := s.db.Guide.Get(ctx, guideID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("get guide: %w", err)
	}
	if g.PatientID != patientID {
		return nil, ErrNotOwner
	}

	switch g.Status {
	case entguide.StatusExpired:
		return nil, ErrGuideExpired
	case entguide.StatusCompleted:
		return nil, ErrGuideCompleted
	}
	if g.UsedCredits >= g.TotalCredits {
		return nil, ErrGuideCompleted
	}
	if g.ExpirationDate.Before(now) {
		return nil, ErrGuidePastDue
	}
	return g, nil
}

// pickFIFOGuide returns the patient's oldest active guide that still has
// credits and has not passed its expiration date.
func (s *facialService) pickFIFOGuide(ctx context.Context, patientID uuid.UUID, now time.Time) (*repo.Guide, error) {
	guides, err := s.db.Guide.Query().
		Where(
			entguide.PatientID(patientID),
			entguide.StatusEQ(entguide.StatusActive),
			entguide.ExpirationDateGTE(now),
		).
		Order(entguide.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query eligible guides: %w", err)
	}

	g := PickFIFO(guides, now)
	if g == nil {
		return nil, ErrNoEligibleGuide
	}
	return g, nil
}

// Eligible reports whether a guide can absorb a check-in at the given
// moment: active, credits left, not past its expiration date.
func Eligible(g *repo.Guide, now time.Time) bool {
	return g.Status == entguide.StatusActive &&
		g.UsedCredits < g.TotalCredits &&
		!g.ExpirationDate.Before(now)
}

// PickFIFO returns the first eligible guide. Guides must already be
// ordered by created_at ascending.
func PickFIFO(guides []*repo.Guide, now time.Time) *repo.Guide {
	for _, g := range guides {
		if Eligible(g, now) {
			return g
		}
	}
	return nil
}

func (s *facialService) hasCheckInToday(ctx context.Context, patientID uuid.UUID, now time.Time) (bool, error) {
	year, month, day := now.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	dup, err := s.db.FacialRecord.Query().
		Where(
			entfacial.PatientID(patientID),
			entfacial.PerformedAtGTE(dayStart),
			entfacial.PerformedAtLT(dayEnd),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check same-day facial: %w", err)
	}
	return dup, nil
}
