package repository

import (
	"errors"
	"math"
)

// Sentinel errors returned by every repository implementation
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Page selects a window of a sorted result set
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of records to skip. It saturates at math.MaxInt
// rather than overflowing.
func (p Page) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// All is the zero Page; it disables pagination.
var All = Page{}
