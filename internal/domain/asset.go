package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a tradable instrument with a last known price.
type Asset struct {
	BaseModel
	Symbol      string          `gorm:"type:varchar(32);not null;index:idx_assets_symbol" json:"symbol"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"price"`
	AssetTypeID uuid.UUID       `gorm:"type:uuid;not null;index:idx_assets_asset_type_id" json:"asset_type_id"`
}

// TableName specifies the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (Asset) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "symbol", "name", "price", "asset_type_id"}
}
