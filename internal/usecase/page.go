package usecase

import (
	"errors"

	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/utils"
)

// Pagination describes the window returned by a list call
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// PageResult is one page of a listing
type PageResult[T any] struct {
	Items      []*T       `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func newPage[T any](items []*T, total int64, page repository.Page) *PageResult[T] {
	if items == nil {
		items = []*T{}
	}
	return &PageResult[T]{
		Items: items,
		Pagination: Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: utils.PageCount(total, page.Limit),
		},
	}
}

// notFound converts repository.ErrNotFound into a kind-specific NotFoundError
func notFound(err error, kind string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Kind: kind}
	}
	return err
}

func checkStatus(status string, allowed []string, valid func(string) bool) error {
	if !valid(status) {
		return invalid("status", statusMessage(allowed))
	}
	return nil
}
