package inventory

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// StockItemUseCase casos de uso de ítems de stock: cantidad actual de una variante en una ubicación.
// Un cambio de ubicación en Update se registra como traslado dentro de la misma transacción.
type StockItemUseCase struct {
	txRunner  TxRunner
	itemRepo  repository.StockItemRepository
	catalog   repository.CatalogGateway
	locations LocationResolver
	transfer  *TransferCoordinator
	log       *logger.Logger
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(
	txRunner TxRunner,
	itemRepo repository.StockItemRepository,
	catalog repository.CatalogGateway,
	locations LocationResolver,
	transfer *TransferCoordinator,
	log *logger.Logger,
) *StockItemUseCase {
	return &StockItemUseCase{
		txRunner:  txRunner,
		itemRepo:  itemRepo,
		catalog:   catalog,
		locations: locations,
		transfer:  transfer,
		log:       log.Component("stock_items"),
	}
}

// references referencias validadas de un ítem.
type references struct {
	product  *entity.Product
	variant  *entity.Variant
	location *entity.Location
}

// resolveReferences valida producto, variante y ubicación: deben existir, estar activos y ser del comercio.
func (uc *StockItemUseCase) resolveReferences(ctx context.Context, merchantID, productID, variantID, locationID int64) (*references, error) {
	if productID <= 0 || variantID <= 0 || locationID <= 0 {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.catalog.ResolveProduct(ctx, productID, merchantID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive || product.MerchantID != merchantID {
		return nil, domain.ErrNotFound
	}
	variant, err := uc.catalog.ResolveVariant(ctx, variantID, productID, merchantID)
	if err != nil {
		return nil, err
	}
	if variant == nil || !variant.IsActive || variant.ProductID != product.ID {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locations.Resolve(ctx, locationID, merchantID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &references{product: product, variant: variant, location: location}, nil
}

// Create crea el ítem de la tripleta (producto, variante, ubicación).
// Si existe una fila inactiva con la misma tripleta se reactiva conservando su cantidad almacenada.
func (uc *StockItemUseCase) Create(ctx context.Context, merchantID int64, in dto.CreateStockItemRequest) (*dto.Response[dto.StockItemResponse], error) {
	if in.CurrentQty.IsNegative() {
		return nil, domain.ErrValidation
	}
	refs, err := uc.resolveReferences(ctx, merchantID, in.ProductID, in.VariantID, in.LocationID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.itemRepo.FindByTriple(ctx, refs.product.ID, refs.variant.ID, refs.location.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if existing != nil {
		if existing.Status.IsActive() {
			return nil, domain.ErrAlreadyExists
		}
		existing.UpdatedAt = now
		// Una creación concurrente que ya reactivó la fila hace fallar este UPDATE condicional.
		if err := uc.itemRepo.Reactivate(ctx, existing); err != nil {
			return nil, err
		}
		uc.log.Info().
			Int64("stock_item_id", existing.ID).
			Str("stored_qty", existing.CurrentQty.String()).
			Str("requested_qty", in.CurrentQty.String()).
			Msg("ítem reactivado, se conserva la cantidad almacenada")
		return uc.FindOne(ctx, existing.ID, merchantID, dto.ModeCreated)
	}

	item := &entity.StockItem{
		ProductID:  refs.product.ID,
		VariantID:  refs.variant.ID,
		LocationID: refs.location.ID,
		CurrentQty: in.CurrentQty,
		Status:     entity.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return uc.FindOne(ctx, item.ID, merchantID, dto.ModeCreated)
}

// FindOne obtiene un ítem del comercio. mode solo cambia el sobre de respuesta,
// salvo ModeDeleted que busca la fila inactiva.
func (uc *StockItemUseCase) FindOne(ctx context.Context, id, merchantID int64, mode dto.ResponseMode) (*dto.Response[dto.StockItemResponse], error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	status := entity.StatusActive
	if mode == dto.ModeDeleted {
		status = entity.StatusInactive
	}
	item, err := uc.itemRepo.Get(ctx, id, merchantID, status)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	code, msg := envelopeFor(mode, "Ítem de stock")
	return &dto.Response[dto.StockItemResponse]{
		StatusCode: code,
		Message:    msg,
		Data:       toStockItemResponse(item),
	}, nil
}

// FindAll lista los ítems activos del comercio filtrando por nombre de producto y/o variante.
func (uc *StockItemUseCase) FindAll(ctx context.Context, merchantID int64, filters dto.StockItemFilters, page dto.PageRequest) (*dto.ListResponse[dto.StockItemResponse], error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	list, total, err := uc.itemRepo.List(ctx, repository.StockItemFilter{
		MerchantID:  merchantID,
		ProductName: strings.TrimSpace(filters.ProductName),
		VariantName: strings.TrimSpace(filters.VariantName),
		Limit:       page.Limit,
		Offset:      page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, toStockItemResponse(it))
	}
	return &dto.ListResponse[dto.StockItemResponse]{
		StatusCode: http.StatusOK,
		Message:    "Ítems de stock encontrados",
		Data:       items,
		Pagination: dto.NewPageMeta(page, total),
	}, nil
}

// Update reasigna producto, variante y ubicación (y la cantidad si viene informada).
// Si la ubicación cambia, el guardado del ítem y el par de movimientos OUT/IN
// se confirman en una única transacción.
func (uc *StockItemUseCase) Update(ctx context.Context, id, merchantID int64, in dto.UpdateStockItemRequest) (*dto.Response[dto.StockItemResponse], error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	if in.CurrentQty != nil && in.CurrentQty.IsNegative() {
		return nil, domain.ErrValidation
	}
	current, err := uc.itemRepo.Get(ctx, id, merchantID, entity.StatusActive)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	refs, err := uc.resolveReferences(ctx, merchantID, in.ProductID, in.VariantID, in.LocationID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		// Bloquea la fila: otro traslado concurrente del mismo ítem espera a este commit.
		item, err := itemRepo.GetForUpdate(ctx, id, merchantID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		// Captura la ubicación de origen antes de mutar; el traslado solo necesita id y nombre.
		oldLocation := &entity.Location{ID: item.LocationID}
		if item.Location != nil {
			oldLocation.Name = item.Location.Name
		}

		now := time.Now()
		item.ProductID = refs.product.ID
		item.VariantID = refs.variant.ID
		item.LocationID = refs.location.ID
		if in.CurrentQty != nil {
			item.CurrentQty = *in.CurrentQty
		}
		item.UpdatedAt = now
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		if oldLocation.ID == refs.location.ID {
			return nil
		}
		return uc.transfer.Relocate(ctx, movRepo, merchantID, item, oldLocation, refs.location, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.FindOne(ctx, id, merchantID, dto.ModeUpdated)
}

// Remove desactiva el ítem y devuelve la fila recién desactivada.
func (uc *StockItemUseCase) Remove(ctx context.Context, id, merchantID int64) (*dto.Response[dto.StockItemResponse], error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	item, err := uc.itemRepo.Get(ctx, id, merchantID, entity.StatusActive)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := item.Status.Deactivate(); err != nil {
		return nil, domain.ErrNotFound
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return uc.FindOne(ctx, id, merchantID, dto.ModeDeleted)
}

// envelopeFor devuelve statusCode y mensaje del sobre según el modo.
func envelopeFor(mode dto.ResponseMode, subject string) (int, string) {
	switch mode {
	case dto.ModeCreated:
		return http.StatusCreated, subject + " creado"
	case dto.ModeUpdated:
		return http.StatusOK, subject + " actualizado"
	case dto.ModeDeleted:
		return http.StatusOK, subject + " eliminado"
	default:
		return http.StatusOK, subject + " encontrado"
	}
}

func toStockItemResponse(it *entity.StockItem) dto.StockItemResponse {
	out := dto.StockItemResponse{
		ID:         it.ID,
		CurrentQty: it.CurrentQty,
		IsActive:   it.Status.IsActive(),
		Product:    dto.RefResponse{ID: it.ProductID},
		Variant:    dto.RefResponse{ID: it.VariantID},
		Location:   dto.RefResponse{ID: it.LocationID},
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
	if it.Product != nil {
		out.Product.Name = it.Product.Name
	}
	if it.Variant != nil {
		out.Variant.Name = it.Variant.Name
	}
	if it.Location != nil {
		out.Location.Name = it.Location.Name
	}
	return out
}
