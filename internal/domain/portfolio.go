package domain

import (
	"github.com/google/uuid"
)

// Portfolio represents a named collection of holdings owned by a user.
type Portfolio struct {
	BaseModel
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_portfolios_user_id" json:"user_id"`
	Holdings []Holding `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"holdings,omitempty"`
}

// TableName specifies the table name for Portfolio
func (Portfolio) TableName() string {
	return "portfolios"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (Portfolio) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "name", "user_id"}
}
