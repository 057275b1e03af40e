package utils

import (
	"math"
	"strconv"
)

// Pagination defaults for list endpoints
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePage parses page/limit query values, falling back to defaults for
// missing or malformed input and capping limit at MaxLimit. page is capped
// so that the resulting offset fits in an int.
func ParsePage(pageStr, limitStr string) (page, limit int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}

	return page, limit
}

// Offset returns the number of records to skip for page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// PageCount returns how many pages of size limit hold total records.
func PageCount(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
