package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/credvia/credvia_backend/internal/service/company"
)

type CompanyHandler struct {
	svc company.Service
}

func NewCompanyHandler(svc company.Service) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// GET /companies
func (h *CompanyHandler) List(c fiber.Ctx) error {
	companies, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, companies)
}

// POST /companies  (platform admin)
func (h *CompanyHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	co, err := h.svc.Create(c.Context(), company.CreateRequest{Name: body.Name})
	if err != nil {
		switch {
		case errors.Is(err, company.ErrNameRequired):
			return badRequest(c, err.Error())
		case errors.Is(err, company.ErrDuplicateCompany):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return created(c, co)
}
