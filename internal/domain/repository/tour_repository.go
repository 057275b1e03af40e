package repository

import (
	"context"

	"tourism-service/internal/domain/entity"
)

// TourFilter narrows a tour listing. Empty fields match everything.
type TourFilter struct {
	Status   string
	Category string
}

// TourRepository defines the interface for tour storage operations.
// Listings are ordered by creation time, oldest first.
type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id string) (*entity.Tour, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Tour, error)
	List(ctx context.Context, filter TourFilter, page Page) ([]*entity.Tour, int64, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id string) error
}
