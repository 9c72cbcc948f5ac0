package inventory

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito dentro de fn.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// LocationResolver valida que una ubicación exista, esté activa y sea del comercio.
// Lo implementa *usecase.LocationUseCase.
type LocationResolver interface {
	Resolve(ctx context.Context, id, merchantID int64) (*entity.Location, error)
}
