package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem cantidad actual de una variante de producto en una ubicación.
// La identidad es la tripleta (ProductID, VariantID, LocationID); solo una fila activa por tripleta.
type StockItem struct {
	ID         int64
	ProductID  int64
	VariantID  int64
	LocationID int64
	CurrentQty decimal.Decimal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Resúmenes poblados en lecturas (join con catálogo y ubicaciones).
	Product  *Ref
	Variant  *Ref
	Location *Ref
}

// SameTriple indica si el ítem corresponde a la tripleta dada.
func (s *StockItem) SameTriple(productID, variantID, locationID int64) bool {
	return s.ProductID == productID && s.VariantID == variantID && s.LocationID == locationID
}
