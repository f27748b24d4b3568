package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int
		limit int
		want  int
	}{
		{total: 0, limit: 10, want: 0},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 95, limit: 10, want: 10},
		{total: 1, limit: 1, want: 1},
		{total: 100, limit: 7, want: 15},
		{total: 5, limit: 10, want: 1},
		{total: math.MaxInt, limit: 10, want: math.MaxInt/10 + 1},
		{total: math.MaxInt, limit: 1, want: math.MaxInt},
		{total: math.MaxInt, limit: math.MaxInt, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.total, tt.limit), "PageCount(%d, %d)", tt.total, tt.limit)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		maxItems  int
		pageCount int
		want      Window
	}{
		{name: "centred", current: 5, maxItems: 4, pageCount: 10, want: Window{Start: 3, End: 7}},
		{name: "small total clamps to page count", current: 1, maxItems: 10, pageCount: 3, want: Window{Start: 1, End: 3}},
		{name: "first page", current: 1, maxItems: 4, pageCount: 10, want: Window{Start: 1, End: 4}},
		{name: "left edge lands on page 1", current: 3, maxItems: 4, pageCount: 10, want: Window{Start: 1, End: 4}},
		{name: "left edge past page 1", current: 4, maxItems: 4, pageCount: 10, want: Window{Start: 2, End: 6}},
		{name: "last page pins to end", current: 10, maxItems: 4, pageCount: 10, want: Window{Start: 6, End: 10}},
		{name: "odd width rounds half away from zero", current: 7, maxItems: 5, pageCount: 20, want: Window{Start: 4, End: 9}},
		{name: "no pages", current: 1, maxItems: 4, pageCount: 0, want: Window{Start: 1, End: 0}},
		{name: "zero width", current: 5, maxItems: 0, pageCount: 10, want: Window{Start: 5, End: 5}},
		{name: "negative width is empty", current: 5, maxItems: -3, pageCount: 10, want: Window{Start: 7, End: 4}},
		{name: "window ending on the largest page", current: math.MaxInt - 5, maxItems: 10, pageCount: math.MaxInt, want: Window{Start: math.MaxInt - 10, End: math.MaxInt}},
		{name: "window past the largest page pins to end", current: math.MaxInt - 2, maxItems: 10, pageCount: math.MaxInt, want: Window{Start: math.MaxInt - 10, End: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bounds(tt.current, tt.maxItems, tt.pageCount))
		})
	}
}

func TestSub_Saturates(t *testing.T) {
	assert.Equal(t, 3, sub(5, 2))
	assert.Equal(t, math.MaxInt, sub(math.MaxInt-1, -5))
	assert.Equal(t, math.MinInt, sub(math.MinInt+1, 5))
	assert.Equal(t, math.MaxInt-10, sub(math.MaxInt, 10))
}
