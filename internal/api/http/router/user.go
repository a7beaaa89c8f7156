package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired, identity fiber.Handler) {
	group := api.Group("/users", authRequired, identity)
	group.Get("/me", h.Me)
}
