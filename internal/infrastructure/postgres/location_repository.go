package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const selectLocation = `
	SELECT l.id, l.merchant_id, l.name, l.address, l.is_active, l.created_at, l.updated_at, m.name
	FROM locations l
	JOIN merchants m ON m.id = l.merchant_id`

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación. Los índices únicos parciales sobre filas activas
// cubren la carrera entre la verificación previa y el INSERT.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	query := `
		INSERT INTO locations (merchant_id, name, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.MerchantID, l.Name, l.Address, l.Status.IsActive(), l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetActive obtiene la ubicación activa del comercio.
func (r *LocationRepo) GetActive(ctx context.Context, id, merchantID int64) (*entity.Location, error) {
	query := selectLocation + ` WHERE l.id = $1 AND l.merchant_id = $2 AND l.is_active = true`
	l, err := scanLocation(r.q.QueryRow(ctx, query, id, merchantID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// FindActiveConflicts busca ubicaciones activas con el mismo nombre o dirección.
func (r *LocationRepo) FindActiveConflicts(ctx context.Context, merchantID int64, name, address string, excludeID int64) ([]*entity.Location, error) {
	query := selectLocation + `
		WHERE l.merchant_id = $1 AND l.is_active = true
		  AND (l.name = $2 OR l.address = $3)
		  AND l.id <> $4`
	rows, err := r.q.Query(ctx, query, merchantID, name, address, excludeID)
	if err != nil {
		return nil, fmt.Errorf("find location conflicts: %w", err)
	}
	return collectLocations(rows)
}

// FindInactiveByIdentity busca la fila inactiva más reciente con (name, address) idénticos.
func (r *LocationRepo) FindInactiveByIdentity(ctx context.Context, merchantID int64, name, address string) (*entity.Location, error) {
	query := selectLocation + `
		WHERE l.merchant_id = $1 AND l.is_active = false AND l.name = $2 AND l.address = $3
		ORDER BY l.updated_at DESC
		LIMIT 1`
	l, err := scanLocation(r.q.QueryRow(ctx, query, merchantID, name, address))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inactive location: %w", err)
	}
	return l, nil
}

// ListActive lista las ubicaciones activas del comercio por nombre.
func (r *LocationRepo) ListActive(ctx context.Context, merchantID int64) ([]*entity.Location, error) {
	query := selectLocation + ` WHERE l.merchant_id = $1 AND l.is_active = true ORDER BY l.name ASC, l.id ASC`
	rows, err := r.q.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return collectLocations(rows)
}

// Reactivate condiciona el UPDATE a is_active = false (ver StockItemRepo.Reactivate).
func (r *LocationRepo) Reactivate(ctx context.Context, l *entity.Location) error {
	query := `
		UPDATE locations SET is_active = true, updated_at = $3
		WHERE id = $1 AND merchant_id = $2 AND is_active = false`
	cmd, err := r.q.Exec(ctx, query, l.ID, l.MerchantID, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("reactivate location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAlreadyExists
	}
	l.Status = entity.StatusActive
	return nil
}

// Update actualiza nombre, dirección y estado.
func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	query := `
		UPDATE locations SET name = $3, address = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND merchant_id = $2`
	cmd, err := r.q.Exec(ctx, query, l.ID, l.MerchantID, l.Name, l.Address, l.Status.IsActive(), l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("update location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var (
		l        entity.Location
		active   bool
		merchant entity.MerchantSummary
	)
	if err := row.Scan(&l.ID, &l.MerchantID, &l.Name, &l.Address, &active, &l.CreatedAt, &l.UpdatedAt, &merchant.Name); err != nil {
		return nil, err
	}
	l.Status = entity.StatusFromActive(active)
	merchant.ID = l.MerchantID
	l.Merchant = &merchant
	return &l, nil
}

func collectLocations(rows pgx.Rows) ([]*entity.Location, error) {
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
