package repository

import (
	"context"

	"tourism-service/internal/domain/entity"
)

// AuditRepository stores the admin activity trail
type AuditRepository interface {
	Record(ctx context.Context, entry *entity.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]*entity.AuditEntry, error)
}
