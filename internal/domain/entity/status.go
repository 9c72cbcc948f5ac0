package entity

import "github.com/jhoicas/stock-api/internal/domain"

// Status ciclo de vida de ubicaciones, ítems y movimientos (borrado lógico).
// En PostgreSQL se persiste como la columna booleana is_active.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// StatusFromActive convierte la columna is_active al ciclo de vida.
func StatusFromActive(active bool) Status {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// IsActive indica si el registro está vigente.
func (s Status) IsActive() bool { return s == StatusActive }

// Activate pasa de inactive a active. Reactivar un registro activo es un error.
func (s *Status) Activate() error {
	if *s == StatusActive {
		return domain.ErrInvalidTransition
	}
	*s = StatusActive
	return nil
}

// Deactivate pasa de active a inactive (borrado lógico).
func (s *Status) Deactivate() error {
	if *s != StatusActive {
		return domain.ErrInvalidTransition
	}
	*s = StatusInactive
	return nil
}
