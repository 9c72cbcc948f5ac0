package inventory_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
)

func TestMovementCreate_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 10)

	tests := []struct {
		name string
		req  dto.CreateMovementRequest
	}{
		{"cantidad cero", dto.CreateMovementRequest{StockItemID: it.ID, Quantity: decimal.Zero, Type: "IN"}},
		{"cantidad negativa", dto.CreateMovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(-2), Type: "OUT"}},
		{"ítem cero", dto.CreateMovementRequest{StockItemID: 0, Quantity: decimal.NewFromInt(1), Type: "IN"}},
		{"tipo desconocido", dto.CreateMovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(1), Type: "SIDEWAYS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.movements.Create(ctx, f.merchantID, tt.req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Zero(t, f.ledger(t, dto.MovementFilters{}).Pagination.Total, "ninguna fila escrita")
}

func TestMovementCreate_ItemDeOtroComercioOInactivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 10)

	_, err := f.movements.Create(ctx, f.otherID, dto.CreateMovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(1), Type: "IN"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.items.Remove(ctx, it.ID, f.merchantID)
	require.NoError(t, err)
	_, err = f.movements.Create(ctx, f.merchantID, dto.CreateMovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(1), Type: "IN"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementCreate_NoAlteraLaCantidadDelItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 10)

	out, err := f.movements.Create(ctx, f.merchantID, dto.CreateMovementRequest{
		StockItemID: it.ID, Quantity: decimal.RequireFromString("2.5"), Type: "out", Reference: " Merma ", Reason: "Rotura",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.Equal(t, "Movimiento creado", out.Message)
	assert.Equal(t, "OUT", out.Data.Type)
	assert.Equal(t, "Merma", out.Data.Reference)
	assert.Equal(t, "Coca Cola", out.Data.ProductName)
	assert.Equal(t, "North", out.Data.LocationName)
	assert.Empty(t, out.Data.TransactionID)

	item, err := f.items.FindOne(ctx, it.ID, f.merchantID, dto.ModeDefault)
	require.NoError(t, err)
	assert.True(t, item.Data.CurrentQty.Equal(decimal.NewFromInt(10)))
}

func TestMovementFindAll_FiltrosYOrden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	coca := f.item(t, f.north, 10)
	agua := f.store.SeedProduct(f.merchantID, "Agua", true)
	aguaVar := f.store.SeedVariant(agua, "500ml", true)
	aguaItem, err := f.items.Create(ctx, f.merchantID, dto.CreateStockItemRequest{ProductID: agua, VariantID: aguaVar, LocationID: f.north})
	require.NoError(t, err)

	var ids []int64
	for _, req := range []dto.CreateMovementRequest{
		{StockItemID: coca.ID, Quantity: decimal.NewFromInt(1), Type: "IN"},
		{StockItemID: aguaItem.Data.ID, Quantity: decimal.NewFromInt(2), Type: "IN"},
		{StockItemID: coca.ID, Quantity: decimal.NewFromInt(3), Type: "OUT"},
	} {
		out, err := f.movements.Create(ctx, f.merchantID, req)
		require.NoError(t, err)
		ids = append(ids, out.Data.ID)
	}

	all := f.ledger(t, dto.MovementFilters{})
	require.Len(t, all.Data, 3)
	assert.Equal(t, ids[2], all.Data[0].ID, "más reciente primero")
	assert.Equal(t, ids[0], all.Data[2].ID)

	assert.Len(t, f.ledger(t, dto.MovementFilters{StockItemID: coca.ID}).Data, 2)
	assert.Len(t, f.ledger(t, dto.MovementFilters{Search: "agu"}).Data, 1)
	assert.Len(t, f.ledger(t, dto.MovementFilters{Type: "out"}).Data, 1)

	other, err := f.movements.FindAll(ctx, f.otherID, dto.MovementFilters{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, other.Data)

	page, err := f.movements.FindAll(ctx, f.merchantID, dto.MovementFilters{}, dto.PageRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, dto.PageMeta{Page: 2, Limit: 2, Total: 3, TotalPages: 2, HasPrev: true}, page.Pagination)

	_, err = f.movements.FindAll(ctx, f.merchantID, dto.MovementFilters{Type: "SIDEWAYS"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMovementUpdateYRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 10)
	created, err := f.movements.Create(ctx, f.merchantID, dto.CreateMovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(1), Type: "IN"})
	require.NoError(t, err)
	id := created.Data.ID

	bad := decimal.Zero
	_, err = f.movements.Update(ctx, id, f.merchantID, dto.UpdateMovementRequest{Quantity: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)

	missing := int64(9999)
	_, err = f.movements.Update(ctx, id, f.merchantID, dto.UpdateMovementRequest{StockItemID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	qty := decimal.NewFromInt(4)
	reason := "Conteo físico"
	updated, err := f.movements.Update(ctx, id, f.merchantID, dto.UpdateMovementRequest{Quantity: &qty, Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, "Movimiento actualizado", updated.Message)
	assert.True(t, updated.Data.Quantity.Equal(qty))
	assert.Equal(t, reason, updated.Data.Reason)
	assert.True(t, updated.Data.CreatedAt.Equal(created.Data.CreatedAt), "createdAt no cambia")

	_, err = f.movements.Remove(ctx, id, f.otherID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err := f.movements.Remove(ctx, id, f.merchantID)
	require.NoError(t, err)
	assert.Equal(t, "Movimiento eliminado", removed.Message)
	assert.False(t, removed.Data.IsActive)

	_, err = f.movements.FindOne(ctx, id, f.merchantID, dto.ModeDefault)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.ledger(t, dto.MovementFilters{}).Pagination.Total)

	_, err = f.movements.FindOne(ctx, 0, f.merchantID, dto.ModeDefault)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
