package entity

// MerchantSummary resumen del comercio dueño de una ubicación.
type MerchantSummary struct {
	ID   int64
	Name string
}

// Product producto del catálogo (servicio externo; solo lectura).
type Product struct {
	ID         int64
	MerchantID int64
	Name       string
	IsActive   bool
}

// Variant variante de un producto del catálogo.
type Variant struct {
	ID        int64
	ProductID int64
	Name      string
	IsActive  bool
}

// Ref referencia ligera (id + nombre) usada en las lecturas enriquecidas.
type Ref struct {
	ID   int64
	Name string
}
