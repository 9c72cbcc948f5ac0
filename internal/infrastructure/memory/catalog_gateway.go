package memory

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.CatalogGateway = (*CatalogRepo)(nil)

// CatalogRepo catálogo sembrado con SeedProduct y SeedVariant.
type CatalogRepo struct {
	s *Store
}

func (r *CatalogRepo) ResolveProduct(ctx context.Context, id, merchantID int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.view(nil, func(d *dataset) error {
		if p, ok := d.products[id]; ok && p.MerchantID == merchantID {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *CatalogRepo) ResolveVariant(ctx context.Context, id, productID, merchantID int64) (*entity.Variant, error) {
	var out *entity.Variant
	err := r.s.view(nil, func(d *dataset) error {
		v, ok := d.variants[id]
		if !ok || v.ProductID != productID {
			return nil
		}
		if p, ok := d.products[productID]; ok && p.MerchantID == merchantID {
			out = &v
		}
		return nil
	})
	return out, err
}
