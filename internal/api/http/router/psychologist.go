package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/handler"
	"github.com/credvia/credvia_backend/internal/api/http/middleware"
	"github.com/credvia/credvia_backend/pkg/authorize"
	"github.com/credvia/credvia_backend/pkg/reqctx"
)

func (r *Router) registerPsychologistRoutes(
	api fiber.Router,
	patientH *handler.PatientHandler,
	sessionH *handler.SessionHandler,
	authRequired, identity fiber.Handler,
	requirePerm permFn,
) {
	group := api.Group("/psychologist", authRequired, identity,
		middleware.RequireRole(reqctx.RolePsychologist))

	group.Get("/patients", patientH.ListMine)
	group.Get("/patients/lookup", patientH.Lookup)
	group.Get("/patients/:patientId/guides/:number", patientH.GuideByNumber,
		requirePerm(authorize.ResourceGuide, authorize.ActionRead))

	group.Post("/sessions", sessionH.RegisterForPatient)
	group.Get("/sessions", sessionH.ListOwn)
}
