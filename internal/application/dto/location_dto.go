package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Address string `json:"address" validate:"required,min=1,max=255"`
}

// UpdateLocationRequest entrada para actualizar una ubicación (campos opcionales).
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	Address *string `json:"address" validate:"omitempty,min=1,max=255"`
}

// MerchantSummaryResponse resumen del comercio.
type MerchantSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID         int64                    `json:"id"`
	Name       string                   `json:"name"`
	Address    string                   `json:"address"`
	MerchantID int64                    `json:"merchantId"`
	IsActive   bool                     `json:"isActive"`
	Merchant   *MerchantSummaryResponse `json:"merchant,omitempty"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}
