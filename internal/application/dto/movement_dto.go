package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/stock-movements.
type CreateMovementRequest struct {
	StockItemID int64           `json:"stockItemId"`
	Quantity    decimal.Decimal `json:"quantity"`
	Type        string          `json:"type" validate:"required,oneof=IN OUT"`
	Reference   string          `json:"reference" validate:"max=255"`
	Reason      string          `json:"reason" validate:"max=255"`
}

// UpdateMovementRequest body para PUT /api/stock-movements/:id (campos opcionales).
type UpdateMovementRequest struct {
	StockItemID *int64           `json:"stockItemId,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Type        *string          `json:"type,omitempty" validate:"omitempty,oneof=IN OUT"`
	Reference   *string          `json:"reference,omitempty" validate:"omitempty,max=255"`
	Reason      *string          `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// MovementFilters filtros del listado de movimientos.
type MovementFilters struct {
	StockItemID   int64  `query:"stockItemId" validate:"min=0"`
	Search        string `query:"search" validate:"max=120"`
	Type          string `query:"type" validate:"omitempty,oneof=IN OUT"`
	TransactionID string `query:"transactionId" validate:"omitempty,uuid"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            int64           `json:"id"`
	StockItemID   int64           `json:"stockItemId"`
	Quantity      decimal.Decimal `json:"quantity"`
	Type          string          `json:"type"`
	Reference     string          `json:"reference,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	MerchantID    int64           `json:"merchantId"`
	TransactionID string          `json:"transactionId,omitempty"`
	IsActive      bool            `json:"isActive"`
	ProductName   string          `json:"productName,omitempty"`
	VariantName   string          `json:"variantName,omitempty"`
	LocationName  string          `json:"locationName,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
