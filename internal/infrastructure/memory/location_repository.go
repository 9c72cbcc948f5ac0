package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo ubicaciones en memoria.
type LocationRepo struct {
	s *Store
}

// locationConflicts equivale a los índices ux_locations_name_active y ux_locations_address_active.
func (d *dataset) locationConflicts(l entity.Location) bool {
	if !l.Status.IsActive() {
		return false
	}
	for _, o := range d.locations {
		if o.ID == l.ID || !o.Status.IsActive() || o.MerchantID != l.MerchantID {
			continue
		}
		if o.Name == l.Name || o.Address == l.Address {
			return true
		}
	}
	return false
}

func (d *dataset) readLocation(l entity.Location) *entity.Location {
	if m, ok := d.merchants[l.MerchantID]; ok {
		l.Merchant = &m
	} else {
		l.Merchant = &entity.MerchantSummary{ID: l.MerchantID}
	}
	return &l
}

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	return r.s.view(nil, func(d *dataset) error {
		row := *l
		row.Merchant = nil
		if d.locationConflicts(row) {
			return domain.ErrAlreadyExists
		}
		row.ID = d.nextID()
		d.locations[row.ID] = row
		l.ID = row.ID
		return nil
	})
}

func (r *LocationRepo) GetActive(ctx context.Context, id, merchantID int64) (*entity.Location, error) {
	var out *entity.Location
	err := r.s.view(nil, func(d *dataset) error {
		l, ok := d.locations[id]
		if ok && l.MerchantID == merchantID && l.Status.IsActive() {
			out = d.readLocation(l)
		}
		return nil
	})
	return out, err
}

func (r *LocationRepo) FindActiveConflicts(ctx context.Context, merchantID int64, name, address string, excludeID int64) ([]*entity.Location, error) {
	var out []*entity.Location
	err := r.s.view(nil, func(d *dataset) error {
		for _, l := range d.locations {
			if l.MerchantID != merchantID || !l.Status.IsActive() || l.ID == excludeID {
				continue
			}
			if l.Name == name || l.Address == address {
				out = append(out, d.readLocation(l))
			}
		}
		return nil
	})
	sortLocations(out)
	return out, err
}

func (r *LocationRepo) FindInactiveByIdentity(ctx context.Context, merchantID int64, name, address string) (*entity.Location, error) {
	var out *entity.Location
	err := r.s.view(nil, func(d *dataset) error {
		for _, l := range d.locations {
			if l.Status.IsActive() || !l.SameIdentity(merchantID, name, address) {
				continue
			}
			if out == nil || l.UpdatedAt.After(out.UpdatedAt) {
				out = d.readLocation(l)
			}
		}
		return nil
	})
	return out, err
}

func (r *LocationRepo) ListActive(ctx context.Context, merchantID int64) ([]*entity.Location, error) {
	var out []*entity.Location
	err := r.s.view(nil, func(d *dataset) error {
		for _, l := range d.locations {
			if l.MerchantID == merchantID && l.Status.IsActive() {
				out = append(out, d.readLocation(l))
			}
		}
		return nil
	})
	sortLocations(out)
	return out, err
}

func (r *LocationRepo) Reactivate(ctx context.Context, l *entity.Location) error {
	return r.s.view(nil, func(d *dataset) error {
		stored, ok := d.locations[l.ID]
		if !ok || stored.MerchantID != l.MerchantID {
			return domain.ErrAlreadyExists
		}
		if err := stored.Status.Activate(); err != nil {
			return domain.ErrAlreadyExists
		}
		stored.UpdatedAt = l.UpdatedAt
		if d.locationConflicts(stored) {
			return domain.ErrAlreadyExists
		}
		d.locations[l.ID] = stored
		l.Status = entity.StatusActive
		return nil
	})
}

func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	return r.s.view(nil, func(d *dataset) error {
		stored, ok := d.locations[l.ID]
		if !ok || stored.MerchantID != l.MerchantID {
			return domain.ErrNotFound
		}
		stored.Name = l.Name
		stored.Address = l.Address
		stored.Status = l.Status
		stored.UpdatedAt = l.UpdatedAt
		if d.locationConflicts(stored) {
			return domain.ErrAlreadyExists
		}
		d.locations[l.ID] = stored
		return nil
	})
}

func sortLocations(list []*entity.Location) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}
