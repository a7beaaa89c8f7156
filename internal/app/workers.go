package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/credvia/credvia_backend/config"
	"github.com/credvia/credvia_backend/internal/repo"
	entguide "github.com/credvia/credvia_backend/internal/repo/guide"
	entlink "github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
	Cfg   *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startLinkNotificationWorker(p.NC, p.DB, p.Email, p.Cfg)
			startGuideNotificationWorker(p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// link_worker
// ---------------------------------------------------------------------------

func startLinkNotificationWorker(nc *nats.Conn, db *repo.Client, mailer *email.Client, cfg *config.Config) {
	// A new request: tell the side that has to answer it.
	_, err := nc.Subscribe("credvia.link.requested.*", func(msg *nats.Msg) {
		link, ok := loadLink(db, msg)
		if !ok {
			return
		}

		patientUser, psychUser := linkParties(link)

		// The side that has to answer gets the mail.
		recipient, counterpart := psychUser, patientUser
		if link.RequestedBy == entlink.RequestedByPsychologist {
			recipient, counterpart = patientUser, psychUser
		}
		if recipient == nil || counterpart == nil {
			return
		}

		sendLinkMail(mailer, email.BuildLinkRequestEmail(email.LinkEmailData{
			RecipientName:   recipient.Name,
			RecipientEmail:  recipient.Email,
			CounterpartName: counterpart.Name,
			BaseURL:         cfg.Server.Domain,
		}), "link request", link.ID)
	})
	if err != nil {
		slog.Error("link_worker: subscribe link.requested failed", "err", err)
	}

	// Acceptance: tell the original requester.
	_, err = nc.Subscribe("credvia.link.accepted.*", func(msg *nats.Msg) {
		link, ok := loadLink(db, msg)
		if !ok {
			return
		}

		patientUser, psychUser := linkParties(link)

		requester, responder := patientUser, psychUser
		if link.RequestedBy == entlink.RequestedByPsychologist {
			requester, responder = psychUser, patientUser
		}
		if responder == nil || requester == nil {
			return
		}

		sendLinkMail(mailer, email.BuildLinkAcceptedEmail(email.LinkEmailData{
			RecipientName:   requester.Name,
			RecipientEmail:  requester.Email,
			CounterpartName: responder.Name,
			BaseURL:         cfg.Server.Domain,
		}), "link accepted", link.ID)
	})
	if err != nil {
		slog.Error("link_worker: subscribe link.accepted failed", "err", err)
	}

	slog.Info("link_worker: started")
}

func loadLink(db *repo.Client, msg *nats.Msg) (*repo.PatientPsychologistLink, bool) {
	idStr := strings.TrimSpace(string(msg.Data))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false
	}

	ctx := context.Background()

	link, err := db.PatientPsychologistLink.Query().
		Where(entlink.ID(id)).
		WithPatient(func(q *repo.PatientQuery) { q.WithUser() }).
		WithPsychologist(func(q *repo.PsychologistQuery) { q.WithUser() }).
		Only(ctx)
	if err != nil {
		slog.Warn("link_worker: link not found", "id", idStr, "err", err)
		return nil, false
	}
	return link, true
}

// linkParties returns (patient user, psychologist user), either may be nil.
func linkParties(link *repo.PatientPsychologistLink) (*repo.User, *repo.User) {
	var patientUser, psychUser *repo.User
	if p := link.Edges.Patient; p != nil {
		patientUser = p.Edges.User
	}
	if p := link.Edges.Psychologist; p != nil {
		psychUser = p.Edges.User
	}
	return patientUser, psychUser
}

func sendLinkMail(mailer *email.Client, m email.Message, kind string, linkID uuid.UUID) {
	if err := mailer.Send(context.Background(), m); err != nil {
		var disabled email.ErrDisabled
		if errors.As(err, &disabled) {
			slog.Debug("link_worker: email disabled, skipping", "kind", kind, "link_id", linkID)
			return
		}
		slog.Warn("link_worker: send email failed", "kind", kind, "link_id", linkID, "err", err)
	}
}

// ---------------------------------------------------------------------------
// guide_worker
// ---------------------------------------------------------------------------

func startGuideNotificationWorker(nc *nats.Conn, db *repo.Client, mailer *email.Client) {
	_, err := nc.Subscribe("credvia.guide.expired.*", func(msg *nats.Msg) {
		id, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		g, err := db.Guide.Query().
			Where(entguide.ID(id)).
			WithPatient(func(q *repo.PatientQuery) { q.WithUser() }).
			Only(ctx)
		if err != nil {
			slog.Warn("guide_worker: guide not found", "id", id, "err", err)
			return
		}

		var recipient *repo.User
		if p := g.Edges.Patient; p != nil {
			recipient = p.Edges.User
		}
		if recipient == nil {
			return
		}

		m := email.BuildGuideExpiredEmail(email.GuideEmailData{
			RecipientName:  recipient.Name,
			RecipientEmail: recipient.Email,
			GuideNumber:    g.Number,
			UnusedCredits:  g.TotalCredits - g.UsedCredits,
		})
		if err := mailer.Send(ctx, m); err != nil {
			var disabled email.ErrDisabled
			if errors.As(err, &disabled) {
				slog.Debug("guide_worker: email disabled, skipping", "guide_id", g.ID)
				return
			}
			slog.Warn("guide_worker: send email failed", "guide_id", g.ID, "err", err)
		}
	})
	if err != nil {
		slog.Error("guide_worker: subscribe guide.expired failed", "err", err)
		return
	}

	slog.Info("guide_worker: started")
}
