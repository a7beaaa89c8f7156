package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/handler"
	"github.com/credvia/credvia_backend/pkg/authorize"
)

type permFn func(authorize.Resource, authorize.Action) fiber.Handler

// registerLedgerRoutes wires the patient-facing credit ledger: guides,
// facial check-ins, sessions, the activity timeline and the balance.
func (r *Router) registerLedgerRoutes(
	api fiber.Router,
	guideH *handler.GuideHandler,
	facialH *handler.FacialHandler,
	sessionH *handler.SessionHandler,
	activityH *handler.ActivityHandler,
	patientH *handler.PatientHandler,
	authRequired, identity fiber.Handler,
	requirePerm permFn,
) {
	guides := api.Group("/guides", authRequired, identity)
	guides.Get("/", guideH.List, requirePerm(authorize.ResourceGuide, authorize.ActionList))
	guides.Post("/", guideH.Create, requirePerm(authorize.ResourceGuide, authorize.ActionCreate))
	guides.Get("/:id", guideH.Get, requirePerm(authorize.ResourceGuide, authorize.ActionRead))
	guides.Patch("/:id", guideH.Update, requirePerm(authorize.ResourceGuide, authorize.ActionUpdate))
	guides.Delete("/:id", guideH.Delete, requirePerm(authorize.ResourceGuide, authorize.ActionDelete))

	facials := api.Group("/facials", authRequired, identity)
	facials.Post("/", facialH.CheckIn, requirePerm(authorize.ResourceFacial, authorize.ActionCreate))
	facials.Get("/", facialH.List, requirePerm(authorize.ResourceFacial, authorize.ActionList))

	sessions := api.Group("/sessions", authRequired, identity)
	sessions.Post("/", sessionH.Register, requirePerm(authorize.ResourceSession, authorize.ActionCreate))
	sessions.Get("/", sessionH.List, requirePerm(authorize.ResourceSession, authorize.ActionList))

	api.Get("/activities", activityH.Timeline, authRequired, identity,
		requirePerm(authorize.ResourceActivity, authorize.ActionList))
	api.Get("/balance", patientH.Balance, authRequired, identity,
		requirePerm(authorize.ResourceBalance, authorize.ActionRead))
}
