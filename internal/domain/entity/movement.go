package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento del libro de stock.
type MovementType string

const (
	MovementTypeIn  MovementType = "IN"  // entrada
	MovementTypeOut MovementType = "OUT" // salida
)

// Valid indica si el tipo es IN u OUT.
func (t MovementType) Valid() bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// Movement registro del libro de movimientos. Quantity es siempre la magnitud (> 0);
// el sentido lo da Type. CreatedAt no cambia después de insertar.
type Movement struct {
	ID            int64
	StockItemID   int64
	Quantity      decimal.Decimal
	Type          MovementType
	Reference     string
	Reason        string
	MerchantID    int64
	TransactionID string // vacío salvo en traslados: OUT e IN comparten el mismo valor
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Item *MovementItem // poblado en lecturas
}

// MovementItem resumen del ítem al que pertenece un movimiento.
type MovementItem struct {
	StockItemID  int64
	ProductName  string
	VariantName  string
	LocationName string
}
