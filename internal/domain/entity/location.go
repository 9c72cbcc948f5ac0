package entity

import "time"

// Location representa un punto físico de stock (bodega, barra, cocina) de un comercio.
// (MerchantID, Name) y (MerchantID, Address) son únicos entre las ubicaciones activas.
type Location struct {
	ID         int64
	MerchantID int64
	Name       string
	Address    string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Merchant *MerchantSummary // poblado en lecturas
}

// SameIdentity indica si la ubicación coincide exactamente con (name, address) del comercio.
func (l *Location) SameIdentity(merchantID int64, name, address string) bool {
	return l.MerchantID == merchantID && l.Name == name && l.Address == address
}
