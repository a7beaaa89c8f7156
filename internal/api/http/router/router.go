package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/credvia/credvia_backend/config"
	"github.com/credvia/credvia_backend/internal/api/http/handler"
	"github.com/credvia/credvia_backend/internal/api/http/middleware"
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
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	Auth         authorize.IAuthorization
	UserSvc      user.Service
	AuthSvc      auth.Service
	PatientSvc   patient.Service
	GuideSvc     guide.Service
	FacialSvc    facial.Service
	SessionSvc   session.Service
	LinkSvc      link.Service
	ReferenceSvc reference.Service
	ActivitySvc  activity.Service
	CompanySvc   company.Service
	PasetoMgr    *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	identity := middleware.ResolveIdentity(r.p.UserSvc)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.GuideSvc)
	guideH := handler.NewGuideHandler(r.p.GuideSvc)
	facialH := handler.NewFacialHandler(r.p.FacialSvc)
	sessionH := handler.NewSessionHandler(r.p.SessionSvc)
	linkH := handler.NewLinkHandler(r.p.LinkSvc)
	referenceH := handler.NewReferenceHandler(r.p.ReferenceSvc)
	activityH := handler.NewActivityHandler(r.p.ActivitySvc, r.p.GuideSvc)
	companyH := handler.NewCompanyHandler(r.p.CompanySvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, identity)
	r.registerLedgerRoutes(api, guideH, facialH, sessionH, activityH, patientH, authRequired, identity, requirePerm)
	r.registerLinkRoutes(api, linkH, referenceH, authRequired, identity, requirePerm)
	r.registerPsychologistRoutes(api, patientH, sessionH, authRequired, identity, requirePerm)
	r.registerCompanyRoutes(api, companyH, authRequired, identity, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
