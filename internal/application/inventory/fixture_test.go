package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/usecase"
	"github.com/jhoicas/stock-api/internal/infrastructure/memory"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// fixture comercio con un producto "Coca Cola" / variante "350ml" y dos ubicaciones North y South.
type fixture struct {
	store     *memory.Store
	locations *usecase.LocationUseCase
	items     *inventory.StockItemUseCase
	movements *inventory.MovementUseCase

	merchantID int64
	otherID    int64
	productID  int64
	variantID  int64
	north      int64
	south      int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	locRepo, itemRepo, movRepo, catalog := store.Repositories()
	log := logger.Nop()

	f := &fixture{store: store}
	f.locations = usecase.NewLocationUseCase(locRepo)
	f.items = inventory.NewStockItemUseCase(store, itemRepo, catalog, f.locations, inventory.NewTransferCoordinator(log), log)
	f.movements = inventory.NewMovementUseCase(movRepo, itemRepo, log)

	f.merchantID = store.SeedMerchant("Café Central")
	f.otherID = store.SeedMerchant("Otro Comercio")
	f.productID = store.SeedProduct(f.merchantID, "Coca Cola", true)
	f.variantID = store.SeedVariant(f.productID, "350ml", true)
	f.north = f.location(t, "North", "Calle Norte 1")
	f.south = f.location(t, "South", "Calle Sur 2")
	return f
}

func (f *fixture) location(t *testing.T, name, address string) int64 {
	t.Helper()
	out, err := f.locations.Create(context.Background(), f.merchantID, dto.CreateLocationRequest{Name: name, Address: address})
	require.NoError(t, err)
	return out.Data.ID
}

// item crea un ítem de la variante sembrada en la ubicación dada.
func (f *fixture) item(t *testing.T, locationID int64, qty int64) dto.StockItemResponse {
	t.Helper()
	out, err := f.items.Create(context.Background(), f.merchantID, dto.CreateStockItemRequest{
		ProductID:  f.productID,
		VariantID:  f.variantID,
		LocationID: locationID,
		CurrentQty: decimal.NewFromInt(qty),
	})
	require.NoError(t, err)
	return out.Data
}

// ledger devuelve todos los movimientos activos del comercio (más recientes primero).
func (f *fixture) ledger(t *testing.T, filters dto.MovementFilters) *dto.ListResponse[dto.MovementResponse] {
	t.Helper()
	out, err := f.movements.FindAll(context.Background(), f.merchantID, filters, dto.PageRequest{Limit: dto.MaxLimit})
	require.NoError(t, err)
	return out
}
