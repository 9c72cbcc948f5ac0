package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// CatalogGateway acceso de solo lectura al catálogo de productos (otro módulo).
// Devuelve (nil, nil) si no existe; la validación de activo/comercio la hace el caso de uso.
type CatalogGateway interface {
	ResolveProduct(ctx context.Context, id, merchantID int64) (*entity.Product, error)
	ResolveVariant(ctx context.Context, id, productID, merchantID int64) (*entity.Variant, error)
}
