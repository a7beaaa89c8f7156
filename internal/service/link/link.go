package link

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/credvia/credvia_backend/config"
	"github.com/credvia/credvia_backend/internal/repo"
	entlink "github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	entpatient "github.com/credvia/credvia_backend/internal/repo/patient"
	entpsych "github.com/credvia/credvia_backend/internal/repo/psychologist"
	entuser "github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/credvia/credvia_backend/pkg/authorize"
	"github.com/credvia/credvia_backend/pkg/util/phone"
)

const defaultCooldownDays = 7

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Actor is the authenticated side of a link operation. Exactly one of
// PatientID / PsychologistID is set.
type Actor struct {
	UserID         uuid.UUID
	PatientID      *uuid.UUID
	PsychologistID *uuid.UUID
}

func (a Actor) party() Party {
	if a.PatientID != nil {
		return PartyPatient
	}
	return PartyPsychologist
}

type RequestByContactRequest struct {
	Email    string
	Whatsapp string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Request(ctx context.Context, actor Actor, targetID uuid.UUID) (*repo.PatientPsychologistLink, error)
	RequestByContact(ctx context.Context, actor Actor, req RequestByContactRequest) (*repo.PatientPsychologistLink, error)
	Respond(ctx context.Context, actor Actor, linkID uuid.UUID, accept bool) (*repo.PatientPsychologistLink, error)
	Delete(ctx context.Context, actor Actor, linkID uuid.UUID) error
	List(ctx context.Context, actor Actor) ([]*repo.PatientPsychologistLink, error)

	// IsAccepted reports whether the pair has an accepted link. Other
	// services use it as the consent gate.
	IsAccepted(ctx context.Context, patientID, psychologistID uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type linkService struct {
	db       *repo.Client
	auth     authorize.IAuthorization
	nc       *nats.Conn
	cooldown time.Duration
	log      *slog.Logger
}

func New(db *repo.Client, auth authorize.IAuthorization, nc *nats.Conn, cfg config.LinkConfig, log *slog.Logger) Service {
	days := cfg.RejectionCooldownDays
	if days <= 0 {
		days = defaultCooldownDays
	}
	return &linkService{
		db:       db,
		auth:     auth,
		nc:       nc,
		cooldown: time.Duration(days) * 24 * time.Hour,
		log:      log,
	}
}

func (s *linkService) Request(ctx context.Context, actor Actor, targetID uuid.UUID) (*repo.PatientPsychologistLink, error) {
	patientID, psychologistID, err := s.resolvePair(ctx, actor, targetID)
	if err != nil {
		return nil, err
	}

	existing, err := s.db.PatientPsychologistLink.Query().
		Where(
			entlink.PatientID(patientID),
			entlink.PsychologistID(psychologistID),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("query link: %w", err)
	}

	decision, err := DecideRequest(snapshot(existing), actor.party(), time.Now(), s.cooldown)
	if err != nil {
		return nil, err
	}

	switch decision {
	case DecisionCreate:
		return s.createPending(ctx, patientID, psychologistID, actor.party())

	case DecisionAutoAccept:
		return s.acceptExisting(ctx, existing, patientID, psychologistID)

	case DecisionReplaceRejected:
		return s.replaceRejected(ctx, existing, patientID, psychologistID, actor.party())
	}
	return nil, ErrInvalidState
}

func (s *linkService) RequestByContact(ctx context.Context, actor Actor, req RequestByContactRequest) (*repo.PatientPsychologistLink, error) {
	q := s.db.User.Query()
	switch {
	case strings.TrimSpace(req.Email) != "":
		q = q.Where(entuser.EmailEqualFold(strings.TrimSpace(req.Email)))
	case strings.TrimSpace(req.Whatsapp) != "":
		normalized, err := phone.Normalize(req.Whatsapp)
		if err != nil {
			return nil, ErrUserNotFound
		}
		q = q.Where(entuser.Whatsapp(normalized))
	default:
		return nil, ErrUserNotFound
	}

	target, err := q.
		WithPatientProfile().
		WithPsychologistProfile().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	// The target must hold the opposite role profile.
	if actor.PatientID != nil {
		if target.Edges.PsychologistProfile == nil {
			return nil, ErrSameRole
		}
		return s.Request(ctx, actor, target.Edges.PsychologistProfile.ID)
	}
	if target.Edges.PatientProfile == nil {
		return nil, ErrSameRole
	}
	return s.Request(ctx, actor, target.Edges.PatientProfile.ID)
}

func (s *linkService) Respond(ctx context.Context, actor Actor, linkID uuid.UUID, accept bool) (*repo.PatientPsychologistLink, error) {
	l, err := s.getParticipantLink(ctx, actor, linkID)
	if err != nil {
		return nil, err
	}

	if err := DecideRespond(snapshot(l), actor.party()); err != nil {
		return nil, err
	}

	if accept {
		return s.acceptExisting(ctx, l, l.PatientID, l.PsychologistID)
	}

	n, err := s.db.PatientPsychologistLink.Update().
		Where(entlink.ID(l.ID), entlink.StatusEQ(entlink.StatusPending)).
		SetStatus(entlink.StatusRejected).
		SetRespondedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject link: %w", err)
	}
	if n == 0 {
		return nil, ErrNotPending
	}
	return s.db.PatientPsychologistLink.Get(ctx, l.ID)
}

func (s *linkService) Delete(ctx context.Context, actor Actor, linkID uuid.UUID) error {
	l, err := s.getParticipantLink(ctx, actor, linkID)
	if err != nil {
		return err
	}

	if err := s.db.PatientPsychologistLink.DeleteOneID(l.ID).Exec(ctx); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}

	s.revokeAccess(ctx, l.PatientID, l.PsychologistID)
	return nil
}

func (s *linkService) List(ctx context.Context, actor Actor) ([]*repo.PatientPsychologistLink, error) {
	q := s.db.PatientPsychologistLink.Query()
	if actor.PatientID != nil {
		q = q.Where(entlink.PatientID(*actor.PatientID))
	} else {
		q = q.Where(entlink.PsychologistID(*actor.PsychologistID))
	}

	links, err := q.
		WithPatient(func(pq *repo.PatientQuery) { pq.WithUser() }).
		WithPsychologist(func(pq *repo.PsychologistQuery) { pq.WithUser() }).
		Order(entlink.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

func (s *linkService) IsAccepted(ctx context.Context, patientID, psychologistID uuid.UUID) (bool, error) {
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

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func snapshot(l *repo.PatientPsychologistLink) Snapshot {
	if l == nil {
		return Snapshot{}
	}
	return Snapshot{
		Exists:      true,
		Status:      Status(l.Status),
		RequestedBy: Party(l.RequestedBy),
		RespondedAt: l.RespondedAt,
	}
}

// resolvePair maps (actor, target profile id) to the canonical
// (patientID, psychologistID) pair, verifying the target exists.
func (s *linkService) resolvePair(ctx context.Context, actor Actor, targetID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	if actor.PatientID != nil {
		exists, err := s.db.Psychologist.Query().Where(entpsych.ID(targetID)).Exist(ctx)
		if err != nil {
			return uuid.Nil, uuid.Nil, fmt.Errorf("check psychologist: %w", err)
		}
		if !exists {
			return uuid.Nil, uuid.Nil, ErrUserNotFound
		}
		return *actor.PatientID, targetID, nil
	}

	exists, err := s.db.Patient.Query().Where(entpatient.ID(targetID)).Exist(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return uuid.Nil, uuid.Nil, ErrUserNotFound
	}
	return targetID, *actor.PsychologistID, nil
}

func (s *linkService) getParticipantLink(ctx context.Context, actor Actor, linkID uuid.UUID) (*repo.PatientPsychologistLink, error) {
	l, err := s.db.PatientPsychologistLink.Get(ctx, linkID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("get link: %w", err)
	}

	if actor.PatientID != nil && l.PatientID == *actor.PatientID {
		return l, nil
	}
	if actor.PsychologistID != nil && l.PsychologistID == *actor.PsychologistID {
		return l, nil
	}
	return nil, ErrNotParticipant
}

func (s *linkService) createPending(ctx context.Context, patientID, psychologistID uuid.UUID, by Party) (*repo.PatientPsychologistLink, error) {
	l, err := s.db.PatientPsychologistLink.Create().
		SetPatientID(patientID).
		SetPsychologistID(psychologistID).
		SetStatus(entlink.StatusPending).
		SetRequestedBy(entlink.RequestedBy(by)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyRequested
		}
		return nil, fmt.Errorf("create link: %w", err)
	}

	s.publish("credvia.link.requested", l.ID)
	return l, nil
}

func (s *linkService) acceptExisting(ctx context.Context, l *repo.PatientPsychologistLink, patientID, psychologistID uuid.UUID) (*repo.PatientPsychologistLink, error) {
	n, err := s.db.PatientPsychologistLink.Update().
		Where(entlink.ID(l.ID), entlink.StatusEQ(entlink.StatusPending)).
		SetStatus(entlink.StatusAccepted).
		SetRespondedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("accept link: %w", err)
	}
	if n == 0 {
		return nil, ErrNotPending
	}

	s.grantAccess(ctx, patientID, psychologistID)
	s.publish("credvia.link.accepted", l.ID)

	return s.db.PatientPsychologistLink.Get(ctx, l.ID)
}

func (s *linkService) replaceRejected(ctx context.Context, stale *repo.PatientPsychologistLink, patientID, psychologistID uuid.UUID, by Party) (_ *repo.PatientPsychologistLink, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.PatientPsychologistLink.DeleteOneID(stale.ID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete stale link: %w", err)
	}

	l, err := tx.PatientPsychologistLink.Create().
		SetPatientID(patientID).
		SetPsychologistID(psychologistID).
		SetStatus(entlink.StatusPending).
		SetRequestedBy(entlink.RequestedBy(by)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create replacement link: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publish("credvia.link.requested", l.ID)
	return l, nil
}

// grantAccess gives the psychologist's user the read role in the
// patient's RBAC domain. Failures are logged, not fatal: RBAC rows can
// be repaired offline.
func (s *linkService) grantAccess(ctx context.Context, patientID, psychologistID uuid.UUID) {
	psych, err := s.db.Psychologist.Get(ctx, psychologistID)
	if err != nil {
		s.log.Warn("grant link access: load psychologist", "err", err)
		return
	}
	if err := authorize.AssignPsychologistRoleForPatient(ctx, s.auth, psych.UserID.String(), patientID.String()); err != nil {
		s.log.Warn("grant link access", "err", err)
	}
}

func (s *linkService) revokeAccess(ctx context.Context, patientID, psychologistID uuid.UUID) {
	psych, err := s.db.Psychologist.Get(ctx, psychologistID)
	if err != nil {
		s.log.Warn("revoke link access: load psychologist", "err", err)
		return
	}
	if err := authorize.RevokePsychologistRoleForPatient(ctx, s.auth, psych.UserID.String(), patientID.String()); err != nil {
		s.log.Warn("revoke link access", "err", err)
	}
}

func (s *linkService) publish(subject string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish(fmt.Sprintf("%s.%s", subject, id), []byte(id.String()))
}
