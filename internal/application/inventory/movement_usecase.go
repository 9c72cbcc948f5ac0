package inventory

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// MovementUseCase casos de uso del libro de movimientos de stock.
// Los movimientos no alteran CurrentQty del ítem: registran historia, no estado.
type MovementUseCase struct {
	movRepo  repository.MovementRepository
	itemRepo repository.StockItemRepository
	log      *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movRepo repository.MovementRepository, itemRepo repository.StockItemRepository, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{
		movRepo:  movRepo,
		itemRepo: itemRepo,
		log:      log.Component("stock_movements"),
	}
}

// Create registra un movimiento manual. Cantidad > 0 y tipo IN/OUT se validan antes de cualquier lectura.
func (uc *MovementUseCase) Create(ctx context.Context, merchantID int64, in dto.CreateMovementRequest) (*dto.Response[dto.MovementResponse], error) {
	movType := entity.MovementType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if in.StockItemID <= 0 || !in.Quantity.IsPositive() || !movType.Valid() {
		return nil, domain.ErrValidation
	}
	item, err := uc.itemRepo.Get(ctx, in.StockItemID, merchantID, entity.StatusActive)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.Movement{
		StockItemID: item.ID,
		Quantity:    in.Quantity,
		Type:        movType,
		Reference:   strings.TrimSpace(in.Reference),
		Reason:      strings.TrimSpace(in.Reason),
		MerchantID:  merchantID,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.movRepo.Create(ctx, movement); err != nil {
		return nil, err
	}
	return uc.FindOne(ctx, movement.ID, merchantID, dto.ModeCreated)
}

// FindAll lista movimientos activos del comercio, más recientes primero.
func (uc *MovementUseCase) FindAll(ctx context.Context, merchantID int64, filters dto.MovementFilters, page dto.PageRequest) (*dto.ListResponse[dto.MovementResponse], error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	if filters.StockItemID < 0 {
		return nil, domain.ErrValidation
	}
	movType := entity.MovementType(strings.ToUpper(strings.TrimSpace(filters.Type)))
	if movType != "" && !movType.Valid() {
		return nil, domain.ErrValidation
	}
	list, total, err := uc.movRepo.List(ctx, repository.MovementFilter{
		MerchantID:    merchantID,
		StockItemID:   filters.StockItemID,
		Search:        strings.TrimSpace(filters.Search),
		Type:          movType,
		TransactionID: strings.TrimSpace(filters.TransactionID),
		Limit:         page.Limit,
		Offset:        page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.ListResponse[dto.MovementResponse]{
		StatusCode: http.StatusOK,
		Message:    "Movimientos encontrados",
		Data:       items,
		Pagination: dto.NewPageMeta(page, total),
	}, nil
}

// FindOne obtiene un movimiento del comercio; ModeDeleted busca la fila inactiva.
func (uc *MovementUseCase) FindOne(ctx context.Context, id, merchantID int64, mode dto.ResponseMode) (*dto.Response[dto.MovementResponse], error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	status := entity.StatusActive
	if mode == dto.ModeDeleted {
		status = entity.StatusInactive
	}
	movement, err := uc.movRepo.Get(ctx, id, merchantID, status)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	code, msg := envelopeFor(mode, "Movimiento")
	return &dto.Response[dto.MovementResponse]{
		StatusCode: code,
		Message:    msg,
		Data:       toMovementResponse(movement),
	}, nil
}

// Update corrige un movimiento existente.
// Editar historia rompe el libro append-only; se mantiene por compatibilidad y queda en el log.
func (uc *MovementUseCase) Update(ctx context.Context, id, merchantID int64, in dto.UpdateMovementRequest) (*dto.Response[dto.MovementResponse], error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	if in.StockItemID != nil && *in.StockItemID <= 0 {
		return nil, domain.ErrValidation
	}
	if in.Quantity != nil && !in.Quantity.IsPositive() {
		return nil, domain.ErrValidation
	}
	var movType entity.MovementType
	if in.Type != nil {
		movType = entity.MovementType(strings.ToUpper(strings.TrimSpace(*in.Type)))
		if !movType.Valid() {
			return nil, domain.ErrValidation
		}
	}

	movement, err := uc.movRepo.Get(ctx, id, merchantID, entity.StatusActive)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if in.StockItemID != nil && *in.StockItemID != movement.StockItemID {
		item, err := uc.itemRepo.Get(ctx, *in.StockItemID, merchantID, entity.StatusActive)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		movement.StockItemID = item.ID
	}
	if in.Quantity != nil {
		movement.Quantity = *in.Quantity
	}
	if in.Type != nil {
		movement.Type = movType
	}
	if in.Reference != nil {
		movement.Reference = strings.TrimSpace(*in.Reference)
	}
	if in.Reason != nil {
		movement.Reason = strings.TrimSpace(*in.Reason)
	}
	movement.UpdatedAt = time.Now()
	if err := uc.movRepo.Update(ctx, movement); err != nil {
		return nil, err
	}
	uc.log.Warn().
		Int64("movement_id", movement.ID).
		Int64("merchant_id", merchantID).
		Msg("movimiento del libro modificado")
	return uc.FindOne(ctx, id, merchantID, dto.ModeUpdated)
}

// Remove desactiva un movimiento (borrado lógico) y devuelve la fila desactivada.
func (uc *MovementUseCase) Remove(ctx context.Context, id, merchantID int64) (*dto.Response[dto.MovementResponse], error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	movement, err := uc.movRepo.Get(ctx, id, merchantID, entity.StatusActive)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if err := movement.Status.Deactivate(); err != nil {
		return nil, domain.ErrNotFound
	}
	movement.UpdatedAt = time.Now()
	if err := uc.movRepo.Update(ctx, movement); err != nil {
		return nil, err
	}
	uc.log.Warn().
		Int64("movement_id", movement.ID).
		Int64("merchant_id", merchantID).
		Msg("movimiento del libro desactivado")
	return uc.FindOne(ctx, id, merchantID, dto.ModeDeleted)
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:            m.ID,
		StockItemID:   m.StockItemID,
		Quantity:      m.Quantity,
		Type:          string(m.Type),
		Reference:     m.Reference,
		Reason:        m.Reason,
		MerchantID:    m.MerchantID,
		TransactionID: m.TransactionID,
		IsActive:      m.Status.IsActive(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Item != nil {
		out.ProductName = m.Item.ProductName
		out.VariantName = m.Item.VariantName
		out.LocationName = m.Item.LocationName
	}
	return out
}
