package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/domain"
)

func TestParseDate_FormatosAceptados(t *testing.T) {
	d, err := dto.ParseDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = dto.ParseDate("2026-05-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())
}

// Nada de coerción implícita: lo que no parsea es ErrInvalidInput.
func TestParseDate_EntradaInvalida(t *testing.T) {
	for _, s := range []string{"", "01/05/2026", "2026-13-40", "ayer"} {
		_, err := dto.ParseDate(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada: %q", s)
	}
}

func TestParseOptionalDate(t *testing.T) {
	d, err := dto.ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d, "vacío significa sin filtro")

	d, err = dto.ParseOptionalDate("2026-05-01")
	require.NoError(t, err)
	require.NotNil(t, d)

	_, err = dto.ParseOptionalDate("no-fecha")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPageRequest_Defaults(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 500, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit, "tope superior")
	assert.Equal(t, 0, p.Offset)
}
