package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "exact multiple", total: 9, pageSize: 3, want: 3},
		{name: "partial last page", total: 10, pageSize: 3, want: 4},
		{name: "single page", total: 2, pageSize: 8, want: 1},
		{name: "zero total reports one page", total: 0, pageSize: 8, want: 1},
		{name: "zero page size reports one page", total: 10, pageSize: 0, want: 1},
		{name: "total smaller than page size", total: 5, pageSize: 100, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 8))
	assert.Equal(t, 3, Offset(2, 3))
	assert.Equal(t, 27, Offset(10, 3))
}
