package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
	}{
		{"por defecto", PageRequest{}, 1, 10},
		{"tope de limit", PageRequest{Page: 2, Limit: 500}, 2, 100},
		{"valores explícitos", PageRequest{Page: 3, Limit: 5}, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}

	_, err := PageRequest{Page: -1}.Normalize()
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = PageRequest{Limit: -5}.Normalize()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 3, Limit: 5}.Offset())
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  PageRequest
		total int
		want  PageMeta
	}{
		{
			name:  "primera página de dos",
			page:  PageRequest{Page: 1, Limit: 5},
			total: 10,
			want:  PageMeta{Page: 1, Limit: 5, Total: 10, TotalPages: 2, HasNext: true, HasPrev: false},
		},
		{
			name:  "última página",
			page:  PageRequest{Page: 2, Limit: 5},
			total: 10,
			want:  PageMeta{Page: 2, Limit: 5, Total: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name:  "redondeo hacia arriba",
			page:  PageRequest{Page: 1, Limit: 10},
			total: 11,
			want:  PageMeta{Page: 1, Limit: 10, Total: 11, TotalPages: 2, HasNext: true},
		},
		{
			name:  "sin resultados",
			page:  PageRequest{Page: 1, Limit: 10},
			total: 0,
			want:  PageMeta{Page: 1, Limit: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageMeta(tt.page, tt.total))
		})
	}
}
