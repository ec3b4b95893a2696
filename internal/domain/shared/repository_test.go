package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilter(t *testing.T) {
	filter := DefaultFilter()

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.PageSize)
	assert.Equal(t, "created_at", filter.OrderBy)
	assert.Equal(t, "desc", filter.OrderDir)
	assert.Empty(t, filter.Search)
}

func TestNewPaginated(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		pageSize       int
		wantTotalPages int
	}{
		{"exact multiple", 40, 20, 2},
		{"partial last page", 41, 20, 3},
		{"single page", 5, 20, 1},
		{"empty", 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPaginated([]string{}, tt.total, 1, tt.pageSize)

			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
			assert.Equal(t, 1, result.Page)
			assert.Equal(t, tt.pageSize, result.PageSize)
		})
	}
}
