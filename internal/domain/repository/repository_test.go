package repository

import (
	"math"
	"testing"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{All, 0},
		{Page{Page: 1, Limit: 10}, 0},
		{Page{Page: 3, Limit: 10}, 20},
		{Page{Page: 0, Limit: 10}, 0},
		{Page{Page: math.MaxInt, Limit: 100}, math.MaxInt},
	}

	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("%+v.Offset() = %d, want %d", tt.page, got, tt.want)
		}
	}
}
