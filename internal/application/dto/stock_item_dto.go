package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest body para POST /api/stock-items.
type CreateStockItemRequest struct {
	ProductID  int64           `json:"productId" validate:"required,gt=0"`
	VariantID  int64           `json:"variantId" validate:"required,gt=0"`
	LocationID int64           `json:"locationId" validate:"required,gt=0"`
	CurrentQty decimal.Decimal `json:"currentQty"`
}

// UpdateStockItemRequest body para PUT /api/stock-items/:id.
// CurrentQty nil conserva la cantidad almacenada.
type UpdateStockItemRequest struct {
	ProductID  int64            `json:"productId" validate:"required,gt=0"`
	VariantID  int64            `json:"variantId" validate:"required,gt=0"`
	LocationID int64            `json:"locationId" validate:"required,gt=0"`
	CurrentQty *decimal.Decimal `json:"currentQty,omitempty"`
}

// StockItemFilters filtros de listado (subcadena, sin distinguir mayúsculas).
type StockItemFilters struct {
	ProductName string `query:"productName" validate:"max=120"`
	VariantName string `query:"variantName" validate:"max=120"`
}

// RefResponse referencia id + nombre.
type RefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StockItemResponse salida de un ítem de stock.
type StockItemResponse struct {
	ID         int64           `json:"id"`
	CurrentQty decimal.Decimal `json:"currentQty"`
	IsActive   bool            `json:"isActive"`
	Product    RefResponse     `json:"product"`
	Variant    RefResponse     `json:"variant"`
	Location   RefResponse     `json:"location"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
