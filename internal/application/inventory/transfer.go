package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// Textos de los movimientos generados por un traslado.
const (
	TransferReason      = "Transfer between stock locations"
	transferExitFormat  = "Movement between locations: Exit from %s"
	transferEntryFormat = "Movement between locations: Entry to %s"
)

// TransferCoordinator registra en el libro el par OUT/IN de un traslado entre ubicaciones.
// Debe invocarse con el repositorio de movimientos de la misma transacción que guardó el ítem.
type TransferCoordinator struct {
	log *logger.Logger
}

// NewTransferCoordinator construye el coordinador.
func NewTransferCoordinator(log *logger.Logger) *TransferCoordinator {
	return &TransferCoordinator{log: log.Component("transfer")}
}

// Relocate inserta la salida desde `from` y la entrada a `to`, ambas por la cantidad
// actual del ítem ya actualizado y con el mismo TransactionID.
// Con cantidad cero no hay stock que mover y no se escribe nada: stock_movements
// exige quantity > 0 (CHECK en migrations/0001_stock_tracking.sql).
func (t *TransferCoordinator) Relocate(
	ctx context.Context,
	movRepo repository.MovementRepository,
	merchantID int64,
	item *entity.StockItem,
	from, to *entity.Location,
	now time.Time,
) error {
	if !item.CurrentQty.IsPositive() {
		t.log.Info().
			Int64("stock_item_id", item.ID).
			Int64("from_location_id", from.ID).
			Int64("to_location_id", to.ID).
			Msg("traslado sin cantidad, no se registran movimientos")
		return nil
	}

	txID := uuid.New().String()
	out := &entity.Movement{
		StockItemID:   item.ID,
		Quantity:      item.CurrentQty,
		Type:          entity.MovementTypeOut,
		Reference:     fmt.Sprintf(transferExitFormat, from.Name),
		Reason:        TransferReason,
		MerchantID:    merchantID,
		TransactionID: txID,
		Status:        entity.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := movRepo.Create(ctx, out); err != nil {
		return fmt.Errorf("registrar salida del traslado: %w", err)
	}
	in := &entity.Movement{
		StockItemID:   item.ID,
		Quantity:      item.CurrentQty,
		Type:          entity.MovementTypeIn,
		Reference:     fmt.Sprintf(transferEntryFormat, to.Name),
		Reason:        TransferReason,
		MerchantID:    merchantID,
		TransactionID: txID,
		Status:        entity.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := movRepo.Create(ctx, in); err != nil {
		return fmt.Errorf("registrar entrada del traslado: %w", err)
	}

	t.log.Info().
		Str("transaction_id", txID).
		Int64("stock_item_id", item.ID).
		Int64("from_location_id", from.ID).
		Int64("to_location_id", to.ID).
		Str("quantity", item.CurrentQty.String()).
		Msg("traslado registrado")
	return nil
}
