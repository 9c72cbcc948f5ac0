package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// LocationUseCase casos de uso de ubicaciones físicas de stock por comercio.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación o reactiva la fila inactiva con el mismo (name, address).
// Falla con ErrAlreadyExists si otra ubicación activa ya usa el nombre o la dirección.
func (uc *LocationUseCase) Create(ctx context.Context, merchantID int64, in dto.CreateLocationRequest) (*dto.Response[dto.LocationResponse], error) {
	name, address := entity.NormalizeText(in.Name), entity.NormalizeText(in.Address)
	if name == "" || address == "" {
		return nil, domain.ErrValidation
	}
	conflicts, err := uc.repo.FindActiveConflicts(ctx, merchantID, name, address, 0)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.ErrAlreadyExists
	}

	now := time.Now()
	location, err := uc.repo.FindInactiveByIdentity(ctx, merchantID, name, address)
	if err != nil {
		return nil, err
	}
	if location != nil {
		location.UpdatedAt = now
		if err := uc.repo.Reactivate(ctx, location); err != nil {
			return nil, err
		}
	} else {
		location = &entity.Location{
			MerchantID: merchantID,
			Name:       name,
			Address:    address,
			Status:     entity.StatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := uc.repo.Create(ctx, location); err != nil {
			return nil, err
		}
	}

	// Releer para incluir el resumen del comercio.
	saved, err := uc.repo.GetActive(ctx, location.ID, merchantID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.Response[dto.LocationResponse]{
		StatusCode: http.StatusCreated,
		Message:    "Ubicación creada",
		Data:       toLocationResponse(saved),
	}, nil
}

// FindOne devuelve la ubicación activa del comercio.
func (uc *LocationUseCase) FindOne(ctx context.Context, id, merchantID int64) (*dto.Response[dto.LocationResponse], error) {
	location, err := uc.Resolve(ctx, id, merchantID)
	if err != nil {
		return nil, err
	}
	return &dto.Response[dto.LocationResponse]{
		StatusCode: http.StatusOK,
		Message:    "Ubicación encontrada",
		Data:       toLocationResponse(location),
	}, nil
}

// FindAll lista las ubicaciones activas del comercio.
func (uc *LocationUseCase) FindAll(ctx context.Context, merchantID int64) (*dto.Response[[]dto.LocationResponse], error) {
	list, err := uc.repo.ListActive(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toLocationResponse(l))
	}
	return &dto.Response[[]dto.LocationResponse]{
		StatusCode: http.StatusOK,
		Message:    "Ubicaciones encontradas",
		Data:       items,
	}, nil
}

// Update modifica nombre y/o dirección. Si cambian, vuelve a verificar unicidad
// contra las demás ubicaciones activas del comercio.
func (uc *LocationUseCase) Update(ctx context.Context, id, merchantID int64, in dto.UpdateLocationRequest) (*dto.Response[dto.LocationResponse], error) {
	location, err := uc.Resolve(ctx, id, merchantID)
	if err != nil {
		return nil, err
	}
	name, address := location.Name, location.Address
	if in.Name != nil {
		name = entity.NormalizeText(*in.Name)
	}
	if in.Address != nil {
		address = entity.NormalizeText(*in.Address)
	}
	if name == "" || address == "" {
		return nil, domain.ErrValidation
	}

	if name != location.Name || address != location.Address {
		conflicts, err := uc.repo.FindActiveConflicts(ctx, merchantID, name, address, location.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range conflicts {
			if (name != location.Name && c.Name == name) || (address != location.Address && c.Address == address) {
				return nil, domain.ErrAlreadyExists
			}
		}
	}

	location.Name = name
	location.Address = address
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, location); err != nil {
		return nil, err
	}
	return &dto.Response[dto.LocationResponse]{
		StatusCode: http.StatusOK,
		Message:    "Ubicación actualizada",
		Data:       toLocationResponse(location),
	}, nil
}

// Remove desactiva la ubicación (borrado lógico).
func (uc *LocationUseCase) Remove(ctx context.Context, id, merchantID int64) (*dto.Response[dto.LocationResponse], error) {
	location, err := uc.Resolve(ctx, id, merchantID)
	if err != nil {
		return nil, err
	}
	if err := location.Status.Deactivate(); err != nil {
		return nil, domain.ErrNotFound
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, location); err != nil {
		return nil, err
	}
	return &dto.Response[dto.LocationResponse]{
		StatusCode: http.StatusOK,
		Message:    "Ubicación eliminada",
		Data:       toLocationResponse(location),
	}, nil
}

// Resolve devuelve la ubicación activa del comercio o ErrNotFound.
// Lo usa el caso de uso de ítems de stock para validar referencias.
func (uc *LocationUseCase) Resolve(ctx context.Context, id, merchantID int64) (*entity.Location, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	location, err := uc.repo.GetActive(ctx, id, merchantID)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.Status.IsActive() || location.MerchantID != merchantID {
		return nil, domain.ErrNotFound
	}
	return location, nil
}

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	out := dto.LocationResponse{
		ID:         l.ID,
		Name:       l.Name,
		Address:    l.Address,
		MerchantID: l.MerchantID,
		IsActive:   l.Status.IsActive(),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	if l.Merchant != nil {
		out.Merchant = &dto.MerchantSummaryResponse{ID: l.Merchant.ID, Name: l.Merchant.Name}
	}
	return out
}
