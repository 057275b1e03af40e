package repository

import (
	"context"
	"time"

	"tourism-service/internal/domain/entity"
)

// ReviewFilter narrows a review listing. A nil Approved matches both.
type ReviewFilter struct {
	Status   string
	Approved *bool
}

// ReviewRepository defines the interface for review storage.
// Listings are ordered newest first.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter, page Page) ([]*entity.Review, int64, error)
	UpdateStatus(ctx context.Context, id, status string, approved bool, at time.Time) (*entity.Review, error)
	Delete(ctx context.Context, id string) error
}
