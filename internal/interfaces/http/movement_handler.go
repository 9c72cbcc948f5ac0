package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/pkg/validator"
)

// MovementHandler libro de movimientos de stock.
type MovementHandler struct {
	uc *inventory.MovementUseCase
	errorHandler
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase, eh errorHandler) *MovementHandler {
	return &MovementHandler{uc: uc, errorHandler: eh}
}

// Create POST /api/stock-movements
// Cantidad e ítem los valida el caso de uso, que responde ValidationFailure antes de leer.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
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

// List GET /api/stock-movements?stockItemId=&search=&type=&transactionId=&page=&limit=
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var filters dto.MovementFilters
	if err := c.QueryParser(&filters); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(filters); errs != nil {
		return validationFailed(c, errs)
	}
	page, err := pageRequest(c)
	if err != nil {
		return h.respond(c, err)
	}
	out, err := h.uc.FindAll(c.UserContext(), GetMerchantID(c), filters, page)
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}

// GetByID GET /api/stock-movements/:id
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond(c, err)
	}
	out, err := h.uc.FindOne(c.UserContext(), id, GetMerchantID(c), dto.ModeDefault)
	if err != nil {
		return h.respond(c, err)
	}
	return reply(c, out.StatusCode, out)
}

// Update PUT /api/stock-movements/:id
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond(c, err)
	}
	var in dto.UpdateMovementRequest
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

// Delete DELETE /api/stock-movements/:id
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
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
