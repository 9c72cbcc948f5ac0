package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// MovementFilter filtros del libro de movimientos. MerchantID es obligatorio.
type MovementFilter struct {
	MerchantID    int64
	StockItemID   int64  // 0 = todos
	Search        string // subcadena del nombre de producto
	Type          entity.MovementType
	TransactionID string
	Limit         int
	Offset        int
}

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El alcance por comercio se resuelve con join movimiento → ítem → producto.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	Get(ctx context.Context, id, merchantID int64, status entity.Status) (*entity.Movement, error)
	// List solo devuelve movimientos activos, más recientes primero, y el total sin paginar.
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, int, error)
	Update(ctx context.Context, movement *entity.Movement) error
}
