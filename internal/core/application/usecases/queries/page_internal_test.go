package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		pages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 1, 3},
	}

	for _, tt := range tests {
		p := newPage[int](nil, PageRequest{Page: 1, Size: tt.size}, tt.total)
		assert.Equal(t, tt.pages, p.TotalPages, "total %d size %d", tt.total, tt.size)
		assert.NotNil(t, p.Items)
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Size: 20}.offset())
	assert.Equal(t, 40, PageRequest{Page: 3, Size: 20}.offset())
}
