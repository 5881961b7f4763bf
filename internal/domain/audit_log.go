package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is an append-only record of who did what to which entity.
// Rows are written once and never updated or deleted by request handling;
// only the retention job removes old entries.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_audit_logs_user_id" json:"user_id"`
	Action     string         `gorm:"type:varchar(50);not null" json:"action"`
	TargetType string         `gorm:"type:varchar(50);not null;index:idx_audit_logs_target_type" json:"target_type"`
	TargetID   *uuid.UUID     `gorm:"type:uuid;index:idx_audit_logs_target_id" json:"target_id,omitempty"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	Timestamp  time.Time      `gorm:"not null;index:idx_audit_logs_timestamp" json:"timestamp"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
