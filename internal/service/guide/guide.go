package guide

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/credvia/credvia_backend/internal/repo"
	entactivity "github.com/credvia/credvia_backend/internal/repo/activitylog"
	entcompany "github.com/credvia/credvia_backend/internal/repo/company"
	entfacial "github.com/credvia/credvia_backend/internal/repo/facialrecord"
	entguide "github.com/credvia/credvia_backend/internal/repo/guide"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Number         string
	TotalCredits   int
	ExpirationDate time.Time
	CompanyID      uuid.UUID
}

type UpdateRequest struct {
	ExpirationDate *time.Time
	// Status accepts only "expired": manual early closure.
	Status *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.Guide, error)
	GetByID(ctx context.Context, patientID, guideID uuid.UUID) (*repo.Guide, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Guide, error)
	Update(ctx context.Context, patientID, guideID uuid.UUID, req UpdateRequest) (*repo.Guide, error)
	Delete(ctx context.Context, patientID, guideID uuid.UUID) error

	// SweepExpired transitions every overdue active guide of the patient
	// to expired, logging each transition. Invoked on read paths.
	SweepExpired(ctx context.Context, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type guideService struct {
	db  *repo.Client
	nc  *nats.Conn
	log *slog.Logger
}

func New(db *repo.Client, nc *nats.Conn, log *slog.Logger) Service {
	return &guideService{db: db, nc: nc, log: log}
}

func (s *guideService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.Guide, error) {
	if err := s.SweepExpired(ctx, patientID); err != nil {
		return nil, err
	}

	guides, err := s.db.Guide.Query().
		Where(entguide.PatientID(patientID)).
		WithCompany().
		WithFacials(func(q *repo.FacialRecordQuery) {
			q.Order(entfacial.ByPerformedAt())
		}).
		Order(entguide.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	return guides, nil
}

func (s *guideService) GetByID(ctx context.Context, patientID, guideID uuid.UUID) (*repo.Guide, error) {
	if err := s.SweepExpired(ctx, patientID); err != nil {
		return nil, err
	}

	g, err := s.db.Guide.Query().
		Where(entguide.ID(guideID)).
		WithCompany().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("get guide: %w", err)
	}
	if g.PatientID != patientID {
		return nil, ErrNotOwner
	}
	return g, nil
}

func (s *guideService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Guide, error) {
	req.Number = strings.TrimSpace(req.Number)
	if req.Number == "" {
		return nil, ErrNumberRequired
	}
	if req.TotalCredits <= 0 {
		return nil, ErrInvalidCredits
	}

	exists, err := s.db.Company.Query().Where(entcompany.ID(req.CompanyID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return nil, ErrCompanyNotFound
	}

	taken, err := s.db.Guide.Query().
		Where(entguide.PatientID(patientID), entguide.Number(req.Number)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check number: %w", err)
	}
	if taken {
		return nil, ErrDuplicateNumber
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

	g, err := tx.Guide.Create().
		SetPatientID(patientID).
		SetCompanyID(req.CompanyID).
		SetNumber(req.Number).
		SetTotalCredits(req.TotalCredits).
		SetExpirationDate(req.ExpirationDate).
		SetStatus(entguide.StatusActive).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			err = ErrDuplicateNumber
			return nil, err
		}
		return nil, fmt.Errorf("create guide: %w", err)
	}

	_, err = tx.ActivityLog.Create().
		SetPatientID(patientID).
		SetType(entactivity.TypeGuideCreated).
		SetDescription(fmt.Sprintf("Guide %s created with %d credits", g.Number, g.TotalCredits)).
		SetMetadata(map[string]any{
			"guide_id":      g.ID.String(),
			"guide_number":  g.Number,
			"total_credits": g.TotalCredits,
		}).
		SetOccurredAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("log guide creation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return g, nil
}

func (s *guideService) Update(ctx context.Context, patientID, guideID uuid.UUID, req UpdateRequest) (*repo.Guide, error) {
	g, err := s.GetByID(ctx, patientID, guideID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if *req.Status != string(entguide.StatusExpired) {
			return nil, ErrInvalidStatus
		}
		return s.closeEarly(ctx, g)
	}

	if g.Status != entguide.StatusActive {
		return nil, ErrTerminalStatus
	}

	upd := s.db.Guide.UpdateOneID(g.ID)
	if req.ExpirationDate != nil {
		upd = upd.SetExpirationDate(*req.ExpirationDate)
	}

	g, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update guide: %w", err)
	}
	return g, nil
}

// closeEarly flips an active guide to expired ahead of its expiration
// date, forfeiting the remaining credits.
func (s *guideService) closeEarly(ctx context.Context, g *repo.Guide) (_ *repo.Guide, err error) {
	if g.Status != entguide.StatusActive {
		return nil, ErrTerminalStatus
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

	n, err := tx.Guide.Update().
		Where(entguide.ID(g.ID), entguide.StatusEQ(entguide.StatusActive)).
		SetStatus(entguide.StatusExpired).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("close guide: %w", err)
	}
	if n == 0 {
		// Lost the race against the sweep or another close.
		err = ErrTerminalStatus
		return nil, err
	}

	forfeited := g.TotalCredits - g.UsedCredits
	_, err = tx.ActivityLog.Create().
		SetPatientID(g.PatientID).
		SetType(entactivity.TypeGuideClosed).
		SetDescription(fmt.Sprintf("Guide %s closed manually, %d credits forfeited", g.Number, forfeited)).
		SetMetadata(map[string]any{
			"guide_id":          g.ID.String(),
			"guide_number":      g.Number,
			"forfeited_credits": forfeited,
		}).
		SetOccurredAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("log guide closure: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.db.Guide.Get(ctx, g.ID)
}

func (s *guideService) Delete(ctx context.Context, patientID, guideID uuid.UUID) error {
	g, err := s.GetByID(ctx, patientID, guideID)
	if err != nil {
		return err
	}

	used, err := s.db.FacialRecord.Query().
		Where(entfacial.GuideID(g.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check facials: %w", err)
	}
	if used {
		return ErrGuideHasFacials
	}

	if err := s.db.Guide.DeleteOneID(g.ID).Exec(ctx); err != nil {
		return fmt.Errorf("delete guide: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Expiration sweep
// ---------------------------------------------------------------------------

// SweepExpired is the only code path that expires guides. The conditional
// update guarantees each guide transitions, and is logged, exactly once
// even when concurrent readers race.
func (s *guideService) SweepExpired(ctx context.Context, patientID uuid.UUID) error {
	now := time.Now()

	overdue, err := s.db.Guide.Query().
		Where(
			entguide.PatientID(patientID),
			entguide.StatusEQ(entguide.StatusActive),
			entguide.ExpirationDateLT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query overdue guides: %w", err)
	}

	for _, g := range overdue {
		if err := s.expireOne(ctx, g, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *guideService) expireOne(ctx context.Context, g *repo.Guide, now time.Time) (err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	n, err := tx.Guide.Update().
		Where(entguide.ID(g.ID), entguide.StatusEQ(entguide.StatusActive)).
		SetStatus(entguide.StatusExpired).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("expire guide: %w", err)
	}
	if n == 0 {
		// Another request already expired it, log entry exists.
		return tx.Rollback()
	}

	forfeited := g.TotalCredits - g.UsedCredits
	_, err = tx.ActivityLog.Create().
		SetPatientID(g.PatientID).
		SetType(entactivity.TypeGuideExpired).
		SetDescription(fmt.Sprintf("Guide %s expired, %d credits forfeited", g.Number, forfeited)).
		SetMetadata(map[string]any{
			"guide_id":          g.ID.String(),
			"guide_number":      g.Number,
			"forfeited_credits": forfeited,
		}).
		SetOccurredAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("log guide expiration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.Info("guide expired",
		"guide_id", g.ID,
		"patient_id", g.PatientID,
		"forfeited_credits", forfeited,
	)
	s.publish("credvia.guide.expired", g.ID)
	return nil
}

func (s *guideService) publish(subject string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish(fmt.Sprintf("%s.%s", subject, id), []byte(id.String()))
}
