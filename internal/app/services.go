package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/credvia/credvia_backend/config"
	"github.com/credvia/credvia_backend/internal/repo"
	"github.com/credvia/credvia_backend/internal/service/activity"
	"github.com/credvia/credvia_backend/internal/service/auth"
	"github.com/credvia/credvia_backend/internal/service/company"
	"github.com/credvia/credvia_backend/internal/service/facial"
	"github.com/credvia/credvia_backend/internal/service/guide"
	"github.com/credvia/credvia_backend/internal/service/link"
	"github.com/credvia/credvia_backend/internal/service/patient"
	"github.com/credvia/credvia_backend/internal/service/reference"
	"github.com/credvia/credvia_backend/internal/service/session"
	"github.com/credvia/credvia_backend/internal/service/user"
	"github.com/credvia/credvia_backend/pkg/authorize"
	pasetotoken "github.com/credvia/credvia_backend/pkg/paseto"
	"github.com/credvia/credvia_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideLogger,
		ProvideUserService,
		ProvideAuthService,
		ProvidePatientService,
		ProvideGuideService,
		ProvideFacialService,
		ProvideLinkService,
		ProvideSessionService,
		ProvideReferenceService,
		ProvideActivityService,
		ProvideCompanyService,
		ProvidePasetoManager,
	),
)

func ProvideLogger() *slog.Logger {
	return slog.Default()
}

func ProvideUserService(client *repo.Client) user.Service {
	return user.New(client)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	authz authorize.IAuthorization,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, smsCli, authz, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideGuideService(db *repo.Client, nc *nats.Conn, log *slog.Logger) guide.Service {
	return guide.New(db, nc, log)
}

func ProvideFacialService(db *repo.Client, guides guide.Service, log *slog.Logger) facial.Service {
	return facial.New(db, guides, log)
}

func ProvideLinkService(db *repo.Client, authz authorize.IAuthorization, nc *nats.Conn, cfg *config.Config, log *slog.Logger) link.Service {
	return link.New(db, authz, nc, cfg.Links, log)
}

func ProvideSessionService(db *repo.Client, links link.Service, log *slog.Logger) session.Service {
	return session.New(db, links, log)
}

func ProvideReferenceService(db *repo.Client, links link.Service, log *slog.Logger) reference.Service {
	return reference.New(db, links, log)
}

func ProvideActivityService(db *repo.Client) activity.Service {
	return activity.New(db)
}

func ProvideCompanyService(db *repo.Client) company.Service {
	return company.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
