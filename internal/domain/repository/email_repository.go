package repository

import (
	"context"

	"tourism-service/internal/domain/entity"
)

// EmailRepository stores the outcome of every dispatched email
type EmailRepository interface {
	Save(ctx context.Context, log *entity.EmailLog) error
	FindByRelatedID(ctx context.Context, relatedID string) ([]*entity.EmailLog, error)
}
