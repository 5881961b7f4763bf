package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PortfolioLedger is an append-only record of changes to portfolios,
// kept separately from the audit log so portfolio history survives
// audit retention.
type PortfolioLedger struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PortfolioID uuid.UUID      `gorm:"type:uuid;not null;index:idx_portfolio_ledgers_portfolio_id" json:"portfolio_id"`
	ChangeType  string         `gorm:"type:varchar(50);not null" json:"change_type"`
	Details     datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	Timestamp   time.Time      `gorm:"not null;index:idx_portfolio_ledgers_timestamp" json:"timestamp"`
}

// TableName specifies the table name for PortfolioLedger
func (PortfolioLedger) TableName() string {
	return "portfolio_ledgers"
}
