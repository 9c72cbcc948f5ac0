package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// El comercio de un ítem es el de su producto.
const stockItemFrom = `
	FROM stock_items si
	JOIN products p ON p.id = si.product_id
	JOIN product_variants v ON v.id = si.variant_id
	JOIN locations l ON l.id = si.location_id`

const selectStockItem = `
	SELECT si.id, si.product_id, si.variant_id, si.location_id, si.current_qty, si.is_active,
	       si.created_at, si.updated_at, p.name, v.name, l.name` + stockItemFrom

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create inserta el ítem. ux_stock_items_triple_active garantiza una sola fila activa por tripleta.
func (r *StockItemRepo) Create(ctx context.Context, it *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (product_id, variant_id, location_id, current_qty, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		it.ProductID, it.VariantID, it.LocationID, it.CurrentQty, it.Status.IsActive(), it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// FindByTriple devuelve la fila de la tripleta, priorizando la activa y luego la más reciente.
func (r *StockItemRepo) FindByTriple(ctx context.Context, productID, variantID, locationID int64) (*entity.StockItem, error) {
	query := selectStockItem + `
		WHERE si.product_id = $1 AND si.variant_id = $2 AND si.location_id = $3
		ORDER BY si.is_active DESC, si.updated_at DESC
		LIMIT 1`
	it, err := scanStockItem(r.q.QueryRow(ctx, query, productID, variantID, locationID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find stock item by triple: %w", err)
	}
	return it, nil
}

// Get obtiene el ítem del comercio en el estado indicado.
func (r *StockItemRepo) Get(ctx context.Context, id, merchantID int64, status entity.Status) (*entity.StockItem, error) {
	query := selectStockItem + ` WHERE si.id = $1 AND p.merchant_id = $2 AND si.is_active = $3`
	it, err := scanStockItem(r.q.QueryRow(ctx, query, id, merchantID, status.IsActive()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return it, nil
}

// GetForUpdate obtiene el ítem activo y bloquea solo su fila (FOR UPDATE OF si).
func (r *StockItemRepo) GetForUpdate(ctx context.Context, id, merchantID int64) (*entity.StockItem, error) {
	query := selectStockItem + `
		WHERE si.id = $1 AND p.merchant_id = $2 AND si.is_active = true
		FOR UPDATE OF si`
	it, err := scanStockItem(r.q.QueryRow(ctx, query, id, merchantID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return it, nil
}

// List lista ítems activos del comercio por nombre de producto ascendente.
// El total se cuenta con los mismos filtros y sin LIMIT/OFFSET.
func (r *StockItemRepo) List(ctx context.Context, f repository.StockItemFilter) ([]*entity.StockItem, int, error) {
	where := ` WHERE p.merchant_id = $1 AND si.is_active = true`
	args := []any{f.MerchantID}
	pos := 2
	if f.ProductName != "" {
		where += fmt.Sprintf(" AND p.name ILIKE $%d", pos)
		args = append(args, containsPattern(f.ProductName))
		pos++
	}
	if f.VariantName != "" {
		where += fmt.Sprintf(" AND v.name ILIKE $%d", pos)
		args = append(args, containsPattern(f.VariantName))
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*)`+stockItemFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock items: %w", err)
	}

	query := selectStockItem + where + fmt.Sprintf(" ORDER BY p.name ASC, si.id ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		it, err := scanStockItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Reactivate condiciona el UPDATE a is_active = false: de dos reactivaciones concurrentes
// solo una afecta la fila.
func (r *StockItemRepo) Reactivate(ctx context.Context, it *entity.StockItem) error {
	query := `
		UPDATE stock_items SET is_active = true, updated_at = $2
		WHERE id = $1 AND is_active = false`
	cmd, err := r.q.Exec(ctx, query, it.ID, it.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("reactivate stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAlreadyExists
	}
	it.Status = entity.StatusActive
	return nil
}

// Update actualiza referencias, cantidad y estado.
func (r *StockItemRepo) Update(ctx context.Context, it *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET product_id = $2, variant_id = $3, location_id = $4, current_qty = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		it.ID, it.ProductID, it.VariantID, it.LocationID, it.CurrentQty, it.Status.IsActive(), it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var (
		it                                     entity.StockItem
		active                                 bool
		productName, variantName, locationName string
	)
	err := row.Scan(
		&it.ID, &it.ProductID, &it.VariantID, &it.LocationID, &it.CurrentQty, &active,
		&it.CreatedAt, &it.UpdatedAt, &productName, &variantName, &locationName,
	)
	if err != nil {
		return nil, err
	}
	it.Status = entity.StatusFromActive(active)
	it.Product = &entity.Ref{ID: it.ProductID, Name: productName}
	it.Variant = &entity.Ref{ID: it.VariantID, Name: variantName}
	it.Location = &entity.Ref{ID: it.LocationID, Name: locationName}
	return &it, nil
}
