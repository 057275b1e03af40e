package repository

import (
	"context"
	"time"

	"tourism-service/internal/domain/entity"
)

// ContactRepository defines the interface for contact message storage.
// Listings are ordered newest first.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	List(ctx context.Context, status string, page Page) ([]*entity.Contact, int64, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}
