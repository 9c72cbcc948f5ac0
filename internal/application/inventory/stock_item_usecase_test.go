package inventory_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/infrastructure/memory"
)

func qtyPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestStockItemCreate_DevuelveResumenes(t *testing.T) {
	f := newFixture(t)

	out, err := f.items.Create(context.Background(), f.merchantID, dto.CreateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.north, CurrentQty: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.Equal(t, "Ítem de stock creado", out.Message)
	assert.Equal(t, "Coca Cola", out.Data.Product.Name)
	assert.Equal(t, "350ml", out.Data.Variant.Name)
	assert.Equal(t, "North", out.Data.Location.Name)
	assert.True(t, out.Data.CurrentQty.Equal(decimal.NewFromInt(8)))
}

func TestStockItemCreate_TripletaActivaDuplicada(t *testing.T) {
	f := newFixture(t)
	f.item(t, f.north, 5)

	_, err := f.items.Create(context.Background(), f.merchantID, dto.CreateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.north, CurrentQty: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestStockItemCreate_ReactivaConservandoCantidad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.item(t, f.north, 5)

	_, err := f.items.Remove(ctx, first.ID, f.merchantID)
	require.NoError(t, err)

	out, err := f.items.Create(ctx, f.merchantID, dto.CreateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.north, CurrentQty: decimal.NewFromInt(99),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, out.Data.ID)
	assert.True(t, out.Data.IsActive)
	assert.True(t, out.Data.CurrentQty.Equal(decimal.NewFromInt(5)), "se conserva la cantidad almacenada")
}

func TestStockItemCreate_ReferenciasInvalidas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inactiveProduct := f.store.SeedProduct(f.merchantID, "Descontinuado", false)
	inactiveVariant := f.store.SeedVariant(f.productID, "2L", false)
	foreignProduct := f.store.SeedProduct(f.otherID, "Ajeno", true)
	foreignVariant := f.store.SeedVariant(foreignProduct, "Ajena", true)
	otherProduct := f.store.SeedProduct(f.merchantID, "Pepsi", true)
	otherVariant := f.store.SeedVariant(otherProduct, "350ml", true)
	removed := f.location(t, "Vieja", "Calle 9")
	_, err := f.locations.Remove(ctx, removed, f.merchantID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     dto.CreateStockItemRequest
		wantErr error
	}{
		{"producto id cero", dto.CreateStockItemRequest{ProductID: 0, VariantID: f.variantID, LocationID: f.north}, domain.ErrInvalidID},
		{"producto inexistente", dto.CreateStockItemRequest{ProductID: 9999, VariantID: f.variantID, LocationID: f.north}, domain.ErrNotFound},
		{"producto inactivo", dto.CreateStockItemRequest{ProductID: inactiveProduct, VariantID: f.variantID, LocationID: f.north}, domain.ErrNotFound},
		{"producto de otro comercio", dto.CreateStockItemRequest{ProductID: foreignProduct, VariantID: foreignVariant, LocationID: f.north}, domain.ErrNotFound},
		{"variante inactiva", dto.CreateStockItemRequest{ProductID: f.productID, VariantID: inactiveVariant, LocationID: f.north}, domain.ErrNotFound},
		{"variante de otro producto", dto.CreateStockItemRequest{ProductID: f.productID, VariantID: otherVariant, LocationID: f.north}, domain.ErrNotFound},
		{"ubicación eliminada", dto.CreateStockItemRequest{ProductID: f.productID, VariantID: f.variantID, LocationID: removed}, domain.ErrNotFound},
		{"cantidad negativa", dto.CreateStockItemRequest{ProductID: f.productID, VariantID: f.variantID, LocationID: f.north, CurrentQty: decimal.NewFromInt(-1)}, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.items.Create(ctx, f.merchantID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	list, err := f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Pagination.Total, "ninguna validación fallida debe escribir")
}

func TestStockItemFindOne_Modos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 3)

	_, err := f.items.FindOne(ctx, 0, f.merchantID, dto.ModeDefault)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.items.FindOne(ctx, it.ID, f.otherID, dto.ModeDefault)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := f.items.FindOne(ctx, it.ID, f.merchantID, dto.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "Ítem de stock encontrado", found.Message)

	removed, err := f.items.Remove(ctx, it.ID, f.merchantID)
	require.NoError(t, err)
	assert.Equal(t, "Ítem de stock eliminado", removed.Message)
	assert.False(t, removed.Data.IsActive)

	_, err = f.items.FindOne(ctx, it.ID, f.merchantID, dto.ModeDefault)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.items.Remove(ctx, it.ID, f.merchantID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockItemUpdate_TrasladoRegistraSalidaYEntrada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 12)

	out, err := f.items.Update(ctx, it.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.south,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ítem de stock actualizado", out.Message)
	assert.Equal(t, "South", out.Data.Location.Name)

	ledger := f.ledger(t, dto.MovementFilters{StockItemID: it.ID})
	require.Len(t, ledger.Data, 2)

	byType := map[string]dto.MovementResponse{}
	for _, m := range ledger.Data {
		byType[m.Type] = m
	}
	exit, entry := byType["OUT"], byType["IN"]
	assert.Equal(t, "Movement between locations: Exit from North", exit.Reference)
	assert.Equal(t, "Movement between locations: Entry to South", entry.Reference)
	for _, m := range []dto.MovementResponse{exit, entry} {
		assert.Equal(t, inventory.TransferReason, m.Reason)
		assert.True(t, m.Quantity.Equal(decimal.NewFromInt(12)))
		assert.Equal(t, f.merchantID, m.MerchantID)
	}
	require.NotEmpty(t, exit.TransactionID)
	assert.Equal(t, exit.TransactionID, entry.TransactionID)

	pair := f.ledger(t, dto.MovementFilters{TransactionID: exit.TransactionID})
	assert.Equal(t, 2, pair.Pagination.Total)
}

func TestStockItemUpdate_CantidadNuevaSeUsaEnElTraslado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 12)

	_, err := f.items.Update(ctx, it.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.south, CurrentQty: qtyPtr(7),
	})
	require.NoError(t, err)

	for _, m := range f.ledger(t, dto.MovementFilters{}).Data {
		assert.True(t, m.Quantity.Equal(decimal.NewFromInt(7)), "los movimientos usan la cantidad ya actualizada")
	}
}

func TestStockItemUpdate_MismaUbicacionNoGeneraMovimientos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 12)

	out, err := f.items.Update(ctx, it.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.north, CurrentQty: qtyPtr(0),
	})
	require.NoError(t, err)
	assert.True(t, out.Data.CurrentQty.IsZero(), "cero también es una cantidad informada")
	assert.Zero(t, f.ledger(t, dto.MovementFilters{}).Pagination.Total)
}

func TestStockItemUpdate_TrasladoSinCantidadNoGeneraMovimientos(t *testing.T) {
	f := newFixture(t)
	it := f.item(t, f.north, 0)

	out, err := f.items.Update(context.Background(), it.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.south,
	})
	require.NoError(t, err)
	assert.Equal(t, "South", out.Data.Location.Name)
	assert.Zero(t, f.ledger(t, dto.MovementFilters{}).Pagination.Total)
}

func TestStockItemUpdate_FalloEnEntradaRevierteTodo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 12)

	// La salida se inserta, la entrada falla.
	f.store.FailMovementCreateAfter(1)
	_, err := f.items.Update(ctx, it.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.south, CurrentQty: qtyPtr(4),
	})
	require.ErrorIs(t, err, memory.ErrInjected)

	current, err := f.items.FindOne(ctx, it.ID, f.merchantID, dto.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, f.north, current.Data.Location.ID, "el ítem sigue en la ubicación original")
	assert.True(t, current.Data.CurrentQty.Equal(decimal.NewFromInt(12)))
	assert.Zero(t, f.ledger(t, dto.MovementFilters{}).Pagination.Total, "no quedan movimientos sueltos")
}

func TestStockItemUpdate_TripletaOcupada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.item(t, f.north, 1)
	southItem := f.item(t, f.south, 1)

	_, err := f.items.Update(ctx, southItem.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.north,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Zero(t, f.ledger(t, dto.MovementFilters{}).Pagination.Total)
}

func TestStockItemUpdate_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, f.north, 1)

	_, err := f.items.Update(ctx, 0, f.merchantID, dto.UpdateStockItemRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.items.Update(ctx, it.ID, f.otherID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.south,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.items.Update(ctx, it.ID, f.merchantID, dto.UpdateStockItemRequest{
		ProductID: f.productID, VariantID: f.variantID, LocationID: f.south, CurrentQty: qtyPtr(-3),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStockItemFindAll_FiltroYOrden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pepsi := f.store.SeedProduct(f.merchantID, "Pepsi Cola", true)
	pepsiVar := f.store.SeedVariant(pepsi, "Lata", true)
	agua := f.store.SeedProduct(f.merchantID, "Agua", true)
	aguaVar := f.store.SeedVariant(agua, "500ml", true)
	foreign := f.store.SeedProduct(f.otherID, "Cola Ajena", true)
	_ = f.store.SeedVariant(foreign, "Lata", true)

	f.item(t, f.north, 1)
	for _, ref := range [][2]int64{{pepsi, pepsiVar}, {agua, aguaVar}} {
		_, err := f.items.Create(ctx, f.merchantID, dto.CreateStockItemRequest{
			ProductID: ref[0], VariantID: ref[1], LocationID: f.north,
		})
		require.NoError(t, err)
	}

	out, err := f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{ProductName: "cola"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "Coca Cola", out.Data[0].Product.Name)
	assert.Equal(t, "Pepsi Cola", out.Data[1].Product.Name)
	assert.Equal(t, 2, out.Pagination.Total)

	out, err = f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{ProductName: "cola", VariantName: "LATA"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Pepsi Cola", out.Data[0].Product.Name)

	all, err := f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, all.Data, 3)
	assert.Equal(t, "Agua", all.Data[0].Product.Name)
}

func TestStockItemFindAll_Paginacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		f.location(t, fmt.Sprintf("Punto %02d", i), fmt.Sprintf("Calle %02d", i))
	}
	all, err := f.locations.FindAll(ctx, f.merchantID)
	require.NoError(t, err)
	for _, l := range all.Data[:12] {
		f.item(t, l.ID, 1)
	}

	out, err := f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{}, dto.PageRequest{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, out.Data, 2)
	assert.Equal(t, dto.PageMeta{Page: 3, Limit: 5, Total: 12, TotalPages: 3, HasNext: false, HasPrev: true}, out.Pagination)

	out, err = f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{}, dto.PageRequest{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxLimit, out.Pagination.Limit)

	_, err = f.items.FindAll(ctx, f.merchantID, dto.StockItemFilters{}, dto.PageRequest{Page: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
