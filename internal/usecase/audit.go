package usecase

import (
	"context"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/logger"
)

// Actor identifies the admin performing a mutation
type Actor struct {
	AdminID string
	IP      string
}

// Auditor writes the admin activity trail. Failures are logged and swallowed.
type Auditor struct {
	repo   repository.AuditRepository
	logger logger.Logger
	now    func() time.Time
}

// NewAuditor creates an auditor
func NewAuditor(repo repository.AuditRepository, logger logger.Logger) *Auditor {
	return &Auditor{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Record appends one entry to the trail
func (a *Auditor) Record(ctx context.Context, actor Actor, action, resourceType, resourceID, detail string) {
	entry := &entity.AuditEntry{
		AdminID:      actor.AdminID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Detail:       detail,
		IPAddress:    actor.IP,
		CreatedAt:    a.now(),
	}

	if err := a.repo.Record(ctx, entry); err != nil {
		a.logger.Error("Failed to record audit entry",
			"action", action,
			"resource", resourceType,
			"resourceID", resourceID,
			"error", err)
	}
}

// Recent returns the latest trail entries. A failing store yields an empty
// list and a warning.
func (a *Auditor) Recent(ctx context.Context, limit int) []*entity.AuditEntry {
	entries, err := a.repo.Recent(ctx, limit)
	if err != nil {
		a.logger.Warn("Failed to load recent audit entries", "limit", limit, "error", err)
		return []*entity.AuditEntry{}
	}
	return entries
}
