package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// El alcance por comercio se resuelve movimiento → ítem → producto.
const movementFrom = `
	FROM stock_movements sm
	JOIN stock_items si ON si.id = sm.stock_item_id
	JOIN products p ON p.id = si.product_id
	JOIN product_variants v ON v.id = si.variant_id
	JOIN locations l ON l.id = si.location_id`

const selectMovement = `
	SELECT sm.id, sm.stock_item_id, sm.quantity, sm.type, COALESCE(sm.reference, ''), COALESCE(sm.reason, ''),
	       sm.merchant_id, COALESCE(sm.transaction_id::text, ''), sm.is_active, sm.created_at, sm.updated_at,
	       p.name, v.name, l.name` + movementFrom

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador (pool o tx).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento. transaction_id solo se informa en traslados.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO stock_movements
			(stock_item_id, quantity, type, reference, reason, merchant_id, transaction_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::uuid, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.StockItemID, m.Quantity, string(m.Type), nullIfEmpty(m.Reference), nullIfEmpty(m.Reason),
		m.MerchantID, nullIfEmpty(m.TransactionID), m.Status.IsActive(), m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// Get obtiene el movimiento del comercio en el estado indicado.
func (r *MovementRepo) Get(ctx context.Context, id, merchantID int64, status entity.Status) (*entity.Movement, error) {
	query := selectMovement + ` WHERE sm.id = $1 AND p.merchant_id = $2 AND sm.is_active = $3`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id, merchantID, status.IsActive()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// List lista movimientos activos del comercio, más recientes primero.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	where := ` WHERE p.merchant_id = $1 AND sm.is_active = true`
	args := []any{f.MerchantID}
	pos := 2
	if f.StockItemID > 0 {
		where += fmt.Sprintf(" AND sm.stock_item_id = $%d", pos)
		args = append(args, f.StockItemID)
		pos++
	}
	if f.Search != "" {
		where += fmt.Sprintf(" AND p.name ILIKE $%d", pos)
		args = append(args, containsPattern(f.Search))
		pos++
	}
	if f.Type != "" {
		where += fmt.Sprintf(" AND sm.type = $%d", pos)
		args = append(args, string(f.Type))
		pos++
	}
	if f.TransactionID != "" {
		where += fmt.Sprintf(" AND sm.transaction_id = $%d::uuid", pos)
		args = append(args, f.TransactionID)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*)`+movementFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	query := selectMovement + where + fmt.Sprintf(" ORDER BY sm.created_at DESC, sm.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update corrige campos y estado. created_at nunca se modifica.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	query := `
		UPDATE stock_movements
		SET stock_item_id = $2, quantity = $3, type = $4, reference = $5, reason = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, m.StockItemID, m.Quantity, string(m.Type), nullIfEmpty(m.Reference), nullIfEmpty(m.Reason),
		m.Status.IsActive(), m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var (
		m       entity.Movement
		movType string
		active  bool
		item    entity.MovementItem
	)
	err := row.Scan(
		&m.ID, &m.StockItemID, &m.Quantity, &movType, &m.Reference, &m.Reason,
		&m.MerchantID, &m.TransactionID, &active, &m.CreatedAt, &m.UpdatedAt,
		&item.ProductName, &item.VariantName, &item.LocationName,
	)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(movType)
	m.Status = entity.StatusFromActive(active)
	item.StockItemID = m.StockItemID
	m.Item = &item
	return &m, nil
}
