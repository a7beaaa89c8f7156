package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/handler"
	"github.com/credvia/credvia_backend/pkg/authorize"
)

func (r *Router) registerLinkRoutes(
	api fiber.Router,
	linkH *handler.LinkHandler,
	referenceH *handler.ReferenceHandler,
	authRequired, identity fiber.Handler,
	requirePerm permFn,
) {
	links := api.Group("/links", authRequired, identity)
	links.Get("/", linkH.List)
	links.Post("/", linkH.Request)
	links.Post("/:id/respond", linkH.Respond)
	links.Delete("/:id", linkH.Delete)

	refs := api.Group("/references", authRequired, identity)
	refs.Get("/", referenceH.List, requirePerm(authorize.ResourceReference, authorize.ActionList))
	refs.Post("/", referenceH.Create, requirePerm(authorize.ResourceReference, authorize.ActionCreate))
	refs.Post("/:id/bind", referenceH.Bind, requirePerm(authorize.ResourceReference, authorize.ActionBind))
	refs.Post("/:id/unbind", referenceH.Unbind, requirePerm(authorize.ResourceReference, authorize.ActionBind))
}
