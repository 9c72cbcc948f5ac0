package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
// Los métodos Get/Find devuelven (nil, nil) cuando no hay fila.
type LocationRepository interface {
	// Create inserta y asigna ID. Un choque con los índices únicos parciales devuelve domain.ErrAlreadyExists.
	Create(ctx context.Context, location *entity.Location) error
	// GetActive devuelve la ubicación activa del comercio, con resumen del comercio.
	GetActive(ctx context.Context, id, merchantID int64) (*entity.Location, error)
	// FindActiveConflicts lista ubicaciones activas del comercio con el mismo nombre o dirección,
	// excluyendo excludeID (0 = ninguna).
	FindActiveConflicts(ctx context.Context, merchantID int64, name, address string, excludeID int64) ([]*entity.Location, error)
	// FindInactiveByIdentity busca una ubicación inactiva con (name, address) idénticos.
	FindInactiveByIdentity(ctx context.Context, merchantID int64, name, address string) (*entity.Location, error)
	ListActive(ctx context.Context, merchantID int64) ([]*entity.Location, error)
	// Reactivate activa la ubicación solo si sigue inactiva; si no, domain.ErrAlreadyExists.
	Reactivate(ctx context.Context, location *entity.Location) error
	// Update persiste name, address y estado.
	Update(ctx context.Context, location *entity.Location) error
}
