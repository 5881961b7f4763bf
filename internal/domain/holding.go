package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding represents a position of an asset inside a portfolio.
type Holding struct {
	BaseModel
	Quantity    decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"quantity"`
	PortfolioID uuid.UUID       `gorm:"type:uuid;not null;index:idx_holdings_portfolio_id" json:"portfolio_id"`
	AssetID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_holdings_asset_id" json:"asset_id"`
}

// TableName specifies the table name for Holding
func (Holding) TableName() string {
	return "holdings"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (Holding) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "quantity", "portfolio_id", "asset_id"}
}
