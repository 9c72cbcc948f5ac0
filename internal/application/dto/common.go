package dto

import (
	"github.com/jhoicas/stock-api/internal/domain"
)

// Paginación por defecto de los listados.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page  int `query:"page" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0"`
}

// Normalize aplica valores por defecto y el tope de limit.
// Valores negativos son un error de validación.
func (p PageRequest) Normalize() (PageRequest, error) {
	if p.Page < 0 || p.Limit < 0 {
		return p, domain.ErrValidation
	}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p, nil
}

// Offset desplazamiento SQL de la página (requiere PageRequest normalizado).
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta metadatos de página en respuestas de listado.
type PageMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPageMeta calcula totalPages = ceil(total/limit), hasNext y hasPrev.
func NewPageMeta(p PageRequest, total int) PageMeta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return PageMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// ResponseMode selecciona el sobre de respuesta de findOne.
// ModeDeleted además consulta filas inactivas (recién borradas).
type ResponseMode string

const (
	ModeDefault ResponseMode = ""
	ModeCreated ResponseMode = "Created"
	ModeUpdated ResponseMode = "Updated"
	ModeDeleted ResponseMode = "Deleted"
)

// Response sobre estándar {statusCode, message, data}.
type Response[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

// ListResponse sobre de listados con metadatos de paginación.
type ListResponse[T any] struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Data       []T      `json:"data"`
	Pagination PageMeta `json:"pagination"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
