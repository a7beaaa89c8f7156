package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/handler"
	"github.com/credvia/credvia_backend/pkg/authorize"
)

func (r *Router) registerCompanyRoutes(
	api fiber.Router,
	h *handler.CompanyHandler,
	authRequired, identity fiber.Handler,
	requirePerm permFn,
) {
	group := api.Group("/companies", authRequired, identity)
	group.Get("/", h.List)
	group.Post("/", h.Create, requirePerm(authorize.ResourceCompany, authorize.ActionCreate))
}
