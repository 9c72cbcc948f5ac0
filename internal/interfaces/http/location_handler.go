package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/usecase"
	"github.com/jhoicas/stock-api/pkg/validator"
)

// LocationHandler maneja las peticiones HTTP de ubicaciones (protegido).
type LocationHandler struct {
	uc *usecase.LocationUseCase
	errorHandler
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase, eh errorHandler) *LocationHandler {
	return &LocationHandler{uc: uc, errorHandler: eh}
}

// Create POST /api/locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	out, err := h.uc.Create(c.UserContext(), GetMerchantID(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}

// List GET /api/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FindAll(c.UserContext(), GetMerchantID(c))
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}

// GetByID GET /api/locations/:id
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond(c, err)
	}
	out, err := h.uc.FindOne(c.UserContext(), id, GetMerchantID(c))
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}

// Update PUT /api/locations/:id
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond(c, err)
	}
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	out, err := h.uc.Update(c.UserContext(), id, GetMerchantID(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}

// Delete DELETE /api/locations/:id (borrado lógico)
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond(c, err)
	}
	out, err := h.uc.Remove(c.UserContext(), id, GetMerchantID(c))
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}
