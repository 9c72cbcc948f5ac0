package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo ítems de stock en memoria; tx != nil cuando pertenece a una transacción.
type StockItemRepo struct {
	s  *Store
	tx *dataset
}

// itemConflicts equivale a ux_stock_items_triple_active.
func (d *dataset) itemConflicts(it entity.StockItem) bool {
	if !it.Status.IsActive() {
		return false
	}
	for _, o := range d.items {
		if o.ID != it.ID && o.Status.IsActive() && o.SameTriple(it.ProductID, it.VariantID, it.LocationID) {
			return true
		}
	}
	return false
}

func (d *dataset) checkItem(it entity.StockItem) error {
	if it.CurrentQty.IsNegative() {
		return fmt.Errorf("stock item: current_qty negativa")
	}
	if _, ok := d.products[it.ProductID]; !ok {
		return fmt.Errorf("stock item: producto %d inexistente", it.ProductID)
	}
	if _, ok := d.variants[it.VariantID]; !ok {
		return fmt.Errorf("stock item: variante %d inexistente", it.VariantID)
	}
	if _, ok := d.locations[it.LocationID]; !ok {
		return fmt.Errorf("stock item: ubicación %d inexistente", it.LocationID)
	}
	return nil
}

// itemMerchant deriva el comercio del ítem a través del producto.
func (d *dataset) itemMerchant(it entity.StockItem) int64 {
	return d.products[it.ProductID].MerchantID
}

func (d *dataset) readItem(it entity.StockItem) *entity.StockItem {
	it.Product = &entity.Ref{ID: it.ProductID, Name: d.products[it.ProductID].Name}
	it.Variant = &entity.Ref{ID: it.VariantID, Name: d.variants[it.VariantID].Name}
	it.Location = &entity.Ref{ID: it.LocationID, Name: d.locations[it.LocationID].Name}
	return &it
}

func stripItem(it entity.StockItem) entity.StockItem {
	it.Product, it.Variant, it.Location = nil, nil, nil
	return it
}

func (r *StockItemRepo) Create(ctx context.Context, it *entity.StockItem) error {
	return r.s.view(r.tx, func(d *dataset) error {
		row := stripItem(*it)
		if err := d.checkItem(row); err != nil {
			return err
		}
		if d.itemConflicts(row) {
			return domain.ErrAlreadyExists
		}
		row.ID = d.nextID()
		d.items[row.ID] = row
		it.ID = row.ID
		return nil
	})
}

func (r *StockItemRepo) FindByTriple(ctx context.Context, productID, variantID, locationID int64) (*entity.StockItem, error) {
	var best *entity.StockItem
	err := r.s.view(r.tx, func(d *dataset) error {
		for _, it := range d.items {
			if !it.SameTriple(productID, variantID, locationID) {
				continue
			}
			if best == nil ||
				(it.Status.IsActive() && !best.Status.IsActive()) ||
				(it.Status == best.Status && it.UpdatedAt.After(best.UpdatedAt)) {
				best = d.readItem(it)
			}
		}
		return nil
	})
	return best, err
}

func (r *StockItemRepo) Get(ctx context.Context, id, merchantID int64, status entity.Status) (*entity.StockItem, error) {
	var out *entity.StockItem
	err := r.s.view(r.tx, func(d *dataset) error {
		it, ok := d.items[id]
		if ok && it.Status == status && d.itemMerchant(it) == merchantID {
			out = d.readItem(it)
		}
		return nil
	})
	return out, err
}

// GetForUpdate no necesita bloqueo por fila: la transacción en memoria ya es exclusiva.
func (r *StockItemRepo) GetForUpdate(ctx context.Context, id, merchantID int64) (*entity.StockItem, error) {
	return r.Get(ctx, id, merchantID, entity.StatusActive)
}

func (r *StockItemRepo) List(ctx context.Context, f repository.StockItemFilter) ([]*entity.StockItem, int, error) {
	var matched []*entity.StockItem
	err := r.s.view(r.tx, func(d *dataset) error {
		for _, it := range d.items {
			if !it.Status.IsActive() || d.itemMerchant(it) != f.MerchantID {
				continue
			}
			row := d.readItem(it)
			if !entity.ContainsFold(row.Product.Name, f.ProductName) || !entity.ContainsFold(row.Variant.Name, f.VariantName) {
				continue
			}
			matched = append(matched, row)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Product.Name != matched[j].Product.Name {
			return matched[i].Product.Name < matched[j].Product.Name
		}
		return matched[i].ID < matched[j].ID
	})
	return paginate(matched, f.Offset, f.Limit), len(matched), nil
}

func (r *StockItemRepo) Reactivate(ctx context.Context, it *entity.StockItem) error {
	return r.s.view(r.tx, func(d *dataset) error {
		stored, ok := d.items[it.ID]
		if !ok {
			return domain.ErrAlreadyExists
		}
		// Activar una fila ya activa es ErrInvalidTransition: otra petición ganó.
		if err := stored.Status.Activate(); err != nil {
			return domain.ErrAlreadyExists
		}
		stored.UpdatedAt = it.UpdatedAt
		if d.itemConflicts(stored) {
			return domain.ErrAlreadyExists
		}
		d.items[it.ID] = stored
		it.Status = entity.StatusActive
		return nil
	})
}

func (r *StockItemRepo) Update(ctx context.Context, it *entity.StockItem) error {
	return r.s.view(r.tx, func(d *dataset) error {
		stored, ok := d.items[it.ID]
		if !ok {
			return domain.ErrNotFound
		}
		row := stripItem(*it)
		row.CreatedAt = stored.CreatedAt
		if err := d.checkItem(row); err != nil {
			return err
		}
		if d.itemConflicts(row) {
			return domain.ErrAlreadyExists
		}
		d.items[row.ID] = row
		return nil
	})
}

func paginate[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return nil
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
