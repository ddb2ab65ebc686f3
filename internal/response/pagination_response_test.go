package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name              string
		page, size, count int
		total             int64
		wantPages         int64
		wantFrom, wantTo  int
		wantMore          bool
	}{
		{"empty", 1, 20, 0, 0, 0, 0, 0, false},
		{"middle page", 2, 2, 2, 5, 3, 3, 4, true},
		{"last partial page", 3, 2, 1, 5, 3, 5, 5, false},
		{"past the end", 4, 2, 0, 5, 3, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.size, tt.total, tt.count)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantFrom, p.From)
			assert.Equal(t, tt.wantTo, p.To)
			assert.Equal(t, tt.wantMore, p.HasMore)
		})
	}
}
