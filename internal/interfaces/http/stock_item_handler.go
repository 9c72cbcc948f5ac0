package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/pkg/validator"
)

// StockItemHandler ítems de stock. PUT con otra locationId registra el traslado.
type StockItemHandler struct {
	uc *inventory.StockItemUseCase
	errorHandler
}

// NewStockItemHandler construye el handler.
func NewStockItemHandler(uc *inventory.StockItemUseCase, eh errorHandler) *StockItemHandler {
	return &StockItemHandler{uc: uc, errorHandler: eh}
}

// Create POST /api/stock-items
func (h *StockItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
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

// List GET /api/stock-items?productName=&variantName=&page=&limit=
func (h *StockItemHandler) List(c *fiber.Ctx) error {
	var filters dto.StockItemFilters
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

// GetByID GET /api/stock-items/:id
func (h *StockItemHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/stock-items/:id
func (h *StockItemHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.respond(c, err)
	}
	var in dto.UpdateStockItemRequest
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

// Delete DELETE /api/stock-items/:id
func (h *StockItemHandler) Delete(c *fiber.Ctx) error {
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
