package domain

// AssetType categorizes assets (stock, crypto, etf, cash, ...).
type AssetType struct {
	BaseModel
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Assets      []Asset `gorm:"foreignKey:AssetTypeID;constraint:OnDelete:CASCADE" json:"assets,omitempty"`
}

// TableName specifies the table name for AssetType
func (AssetType) TableName() string {
	return "asset_types"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (AssetType) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "name", "description"}
}
