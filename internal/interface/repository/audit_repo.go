package repository

import (
	"context"
	"fmt"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAuditRepository implements the AuditRepository interface on PostgreSQL
type GormAuditRepository struct {
	db *gorm.DB
}

// AuditLogs GORM model for database mapping
type AuditLogs struct {
	ID           uint      `gorm:"primaryKey"`
	AdminID      string    `gorm:"column:admin_id;size:24;index"`
	Action       string    `gorm:"size:32;index"`
	ResourceType string    `gorm:"size:32;index"`
	ResourceID   string    `gorm:"size:64"`
	Detail       string    `gorm:"type:text"`
	IPAddress    string    `gorm:"size:64"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName overrides the default table name
func (AuditLogs) TableName() string {
	return "admin_audit_logs"
}

// NewGormAuditRepository creates a new GORM audit repository and migrates its table
func NewGormAuditRepository(db *gorm.DB) (repository.AuditRepository, error) {
	if err := db.AutoMigrate(&AuditLogs{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit table: %w", err)
	}

	return &GormAuditRepository{
		db: db,
	}, nil
}

// Record appends an entry to the trail
func (r *GormAuditRepository) Record(ctx context.Context, entry *entity.AuditEntry) error {
	row := AuditLogs{
		AdminID:      entry.AdminID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Detail:       entry.Detail,
		IPAddress:    entry.IPAddress,
		CreatedAt:    entry.CreatedAt,
	}

	return r.db.WithContext(ctx).Create(&row).Error
}

// Recent returns the latest entries, newest first
func (r *GormAuditRepository) Recent(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	var rows []AuditLogs
	result := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	entries := make([]*entity.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.AuditEntry{
			AdminID:      row.AdminID,
			Action:       row.Action,
			ResourceType: row.ResourceType,
			ResourceID:   row.ResourceID,
			Detail:       row.Detail,
			IPAddress:    row.IPAddress,
			CreatedAt:    row.CreatedAt,
		})
	}

	return entries, nil
}

// NopAuditRepository discards entries. Used when no PostgreSQL DSN is configured.
type NopAuditRepository struct{}

// Record does nothing
func (NopAuditRepository) Record(context.Context, *entity.AuditEntry) error { return nil }

// Recent returns no entries
func (NopAuditRepository) Recent(context.Context, int) ([]*entity.AuditEntry, error) {
	return []*entity.AuditEntry{}, nil
}
