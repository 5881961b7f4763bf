package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/domain"
)

// AuditLogRepository defines the interface for audit log persistence.
// Audit rows are append-only: there is no update or single-row delete.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditLog, error)
	FindByTarget(ctx context.Context, targetType string, targetID uuid.UUID, limit int) ([]*domain.AuditLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// auditLogRepositoryImpl is the GORM implementation of AuditLogRepository
type auditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new instance of AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

// Create appends a new audit entry
func (r *auditLogRepositoryImpl) Create(ctx context.Context, entry *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByUserID returns the most recent entries for a user
func (r *auditLogRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditLog, error) {
	var entries []*domain.AuditLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByTarget returns the most recent entries for a target entity
func (r *auditLogRepositoryImpl) FindByTarget(ctx context.Context, targetType string, targetID uuid.UUID, limit int) ([]*domain.AuditLog, error) {
	var entries []*domain.AuditLog
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteOlderThan removes entries older than the cutoff, returning the
// number of rows removed. Used by the retention job only.
func (r *auditLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&domain.AuditLog{})
	return result.RowsAffected, result.Error
}
