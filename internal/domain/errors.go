package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los adaptadores envuelven estos valores con fmt.Errorf("...: %w"); comparar siempre con errors.Is.
var (
	ErrInvalidID         = errors.New("identificador inválido")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrAlreadyExists     = errors.New("el recurso ya existe")
	ErrValidation        = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
