package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// StockItemFilter filtros de listado. MerchantID es obligatorio; siempre se listan solo activos.
type StockItemFilter struct {
	MerchantID  int64
	ProductName string // subcadena, sin distinguir mayúsculas
	VariantName string
	Limit       int
	Offset      int
}

// StockItemRepository define el puerto de persistencia para StockItem.
// El comercio se deriva del producto (products.merchant_id).
type StockItemRepository interface {
	// Create inserta y asigna ID. Otra fila activa con la misma tripleta devuelve domain.ErrAlreadyExists.
	Create(ctx context.Context, item *entity.StockItem) error
	// FindByTriple busca cualquier fila (activa o no) con la tripleta dada.
	FindByTriple(ctx context.Context, productID, variantID, locationID int64) (*entity.StockItem, error)
	// Get devuelve el ítem del comercio en el estado indicado, con resúmenes de producto/variante/ubicación.
	Get(ctx context.Context, id, merchantID int64, status entity.Status) (*entity.StockItem, error)
	// GetForUpdate obtiene el ítem activo y bloquea la fila (SELECT FOR UPDATE). Usar dentro de TxRunner.
	GetForUpdate(ctx context.Context, id, merchantID int64) (*entity.StockItem, error)
	// List devuelve la página pedida y el total previo a la paginación, ordenado por nombre de producto.
	List(ctx context.Context, filter StockItemFilter) ([]*entity.StockItem, int, error)
	// Reactivate activa la fila solo si sigue inactiva. Si otra petición ya la reactivó,
	// o hay otra fila activa con la tripleta, devuelve domain.ErrAlreadyExists.
	Reactivate(ctx context.Context, item *entity.StockItem) error
	// Update persiste referencias, cantidad y estado.
	Update(ctx context.Context, item *entity.StockItem) error
}
