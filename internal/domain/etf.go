package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ETF represents an exchange-traded fund tracked by the workbench.
type ETF struct {
	BaseModel
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Symbol      string       `gorm:"type:varchar(32);not null;index:idx_etfs_symbol" json:"symbol"`
	TopHoldings []TopHolding `gorm:"foreignKey:ETFID;constraint:OnDelete:CASCADE" json:"top_holdings,omitempty"`
}

// TopHolding represents one of the largest positions inside an ETF.
type TopHolding struct {
	BaseModel
	Symbol string          `gorm:"type:varchar(32);not null" json:"symbol"`
	Weight decimal.Decimal `gorm:"type:numeric(10,6);not null" json:"weight"`
	ETFID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_top_holdings_etf_id" json:"etf_id"`
}

// TableName specifies the table name for ETF
func (ETF) TableName() string {
	return "etfs"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (ETF) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "name", "symbol"}
}

// TableName specifies the table name for TopHolding
func (TopHolding) TableName() string {
	return "top_holdings"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (TopHolding) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "symbol", "weight", "etf_id"}
}
