package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// itemsWithHook ejecuta afterFind una vez, justo después de la búsqueda por tripleta,
// para intercalar otra petición entre la lectura y la escritura.
type itemsWithHook struct {
	repository.StockItemRepository
	afterFind func()
}

func (r *itemsWithHook) FindByTriple(ctx context.Context, productID, variantID, locationID int64) (*entity.StockItem, error) {
	it, err := r.StockItemRepository.FindByTriple(ctx, productID, variantID, locationID)
	if hook := r.afterFind; hook != nil {
		r.afterFind = nil
		hook()
	}
	return it, err
}

func TestStockItemCreate_ReactivacionConcurrenteSoloGanaUna(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.item(t, f.north, 5)
	_, err := f.items.Remove(ctx, first.ID, f.merchantID)
	require.NoError(t, err)

	_, itemRepo, _, catalog := f.store.Repositories()
	log := logger.Nop()
	hooked := &itemsWithHook{StockItemRepository: itemRepo}
	slow := inventory.NewStockItemUseCase(f.store, hooked, catalog, f.locations, inventory.NewTransferCoordinator(log), log)

	req := dto.CreateStockItemRequest{ProductID: f.productID, VariantID: f.variantID, LocationID: f.north, CurrentQty: decimal.NewFromInt(1)}
	var fastErr error
	// La petición rápida reactiva la fila mientras la lenta ya la vio inactiva.
	hooked.afterFind = func() {
		_, fastErr = f.items.Create(ctx, f.merchantID, req)
	}
	_, slowErr := slow.Create(ctx, f.merchantID, req)

	require.NoError(t, fastErr)
	assert.ErrorIs(t, slowErr, domain.ErrAlreadyExists)

	list, err := f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, first.ID, list.Data[0].ID)
}
