package dto

import (
	"time"

	"github.com/armasset/ledger-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available *int64 `json:"available,omitempty"` // solo en INSUFFICIENT_STOCK
	Requested *int64 `json:"requested,omitempty"` // solo en INSUFFICIENT_STOCK
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Formatos de fecha aceptados en el borde HTTP.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate convierte la fecha de entrada (laxa) en un time.Time validado.
// La coerción implícita queda prohibida: o parsea, o ErrInvalidInput.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}

// ParseOptionalDate como ParseDate pero admite cadena vacía (sin filtro).
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
