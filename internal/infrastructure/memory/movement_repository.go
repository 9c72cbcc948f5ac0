package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos en memoria.
type MovementRepo struct {
	s  *Store
	tx *dataset
}

func (d *dataset) checkMovement(m entity.Movement) error {
	if _, ok := d.items[m.StockItemID]; !ok {
		return fmt.Errorf("stock movement: ítem %d inexistente", m.StockItemID)
	}
	if !m.Quantity.IsPositive() {
		return fmt.Errorf("stock movement: quantity debe ser > 0")
	}
	if !m.Type.Valid() {
		return fmt.Errorf("stock movement: tipo %q inválido", m.Type)
	}
	return nil
}

func (d *dataset) readMovement(m entity.Movement) *entity.Movement {
	it := d.items[m.StockItemID]
	m.Item = &entity.MovementItem{
		StockItemID:  it.ID,
		ProductName:  d.products[it.ProductID].Name,
		VariantName:  d.variants[it.VariantID].Name,
		LocationName: d.locations[it.LocationID].Name,
	}
	return &m
}

func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	return r.s.view(r.tx, func(d *dataset) error {
		// El lock del Store está tomado en ambos caminos de view.
		switch {
		case r.s.failMovementAfter == 0:
			r.s.failMovementAfter = -1
			return ErrInjected
		case r.s.failMovementAfter > 0:
			r.s.failMovementAfter--
		}
		row := *m
		row.Item = nil
		if err := d.checkMovement(row); err != nil {
			return err
		}
		row.ID = d.nextID()
		d.movements[row.ID] = row
		m.ID = row.ID
		return nil
	})
}

func (r *MovementRepo) Get(ctx context.Context, id, merchantID int64, status entity.Status) (*entity.Movement, error) {
	var out *entity.Movement
	err := r.s.view(r.tx, func(d *dataset) error {
		m, ok := d.movements[id]
		if ok && m.Status == status && d.itemMerchant(d.items[m.StockItemID]) == merchantID {
			out = d.readMovement(m)
		}
		return nil
	})
	return out, err
}

func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	var matched []*entity.Movement
	err := r.s.view(r.tx, func(d *dataset) error {
		for _, m := range d.movements {
			if !m.Status.IsActive() || d.itemMerchant(d.items[m.StockItemID]) != f.MerchantID {
				continue
			}
			if f.StockItemID > 0 && m.StockItemID != f.StockItemID {
				continue
			}
			if f.Type != "" && m.Type != f.Type {
				continue
			}
			if f.TransactionID != "" && m.TransactionID != f.TransactionID {
				continue
			}
			row := d.readMovement(m)
			if !entity.ContainsFold(row.Item.ProductName, f.Search) {
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
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return paginate(matched, f.Offset, f.Limit), len(matched), nil
}

func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	return r.s.view(r.tx, func(d *dataset) error {
		stored, ok := d.movements[m.ID]
		if !ok {
			return domain.ErrNotFound
		}
		row := *m
		row.Item = nil
		row.CreatedAt = stored.CreatedAt
		row.MerchantID = stored.MerchantID
		row.TransactionID = stored.TransactionID
		if err := d.checkMovement(row); err != nil {
			return err
		}
		d.movements[row.ID] = row
		return nil
	})
}
