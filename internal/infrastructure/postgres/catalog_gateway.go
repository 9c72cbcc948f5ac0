package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.CatalogGateway = (*CatalogRepo)(nil)

// CatalogRepo lectura del catálogo de productos; las tablas son del servicio de catálogo.
type CatalogRepo struct {
	q Querier
}

// NewCatalogGateway construye el adaptador.
func NewCatalogGateway(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ResolveProduct devuelve el producto del comercio (activo o no) o nil.
func (r *CatalogRepo) ResolveProduct(ctx context.Context, id, merchantID int64) (*entity.Product, error) {
	query := `SELECT id, merchant_id, name, is_active FROM products WHERE id = $1 AND merchant_id = $2`
	var p entity.Product
	if err := r.q.QueryRow(ctx, query, id, merchantID).Scan(&p.ID, &p.MerchantID, &p.Name, &p.IsActive); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	return &p, nil
}

// ResolveVariant devuelve la variante del producto, si el producto es del comercio.
func (r *CatalogRepo) ResolveVariant(ctx context.Context, id, productID, merchantID int64) (*entity.Variant, error) {
	query := `
		SELECT v.id, v.product_id, v.name, v.is_active
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		WHERE v.id = $1 AND v.product_id = $2 AND p.merchant_id = $3`
	var v entity.Variant
	if err := r.q.QueryRow(ctx, query, id, productID, merchantID).Scan(&v.ID, &v.ProductID, &v.Name, &v.IsActive); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve variant: %w", err)
	}
	return &v, nil
}
