package repository

import (
	"context"
	"time"

	"tourism-service/internal/domain/entity"
)

// CustomTourRepository defines the interface for custom tour request storage.
// Listings are ordered newest first.
type CustomTourRepository interface {
	Create(ctx context.Context, req *entity.CustomizeTourRequest) error
	FindByID(ctx context.Context, id string) (*entity.CustomizeTourRequest, error)
	List(ctx context.Context, status string, page Page) ([]*entity.CustomizeTourRequest, int64, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*entity.CustomizeTourRequest, error)
	Delete(ctx context.Context, id string) error
}
