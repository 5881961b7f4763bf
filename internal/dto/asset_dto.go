package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
)

// CreateAssetRequest represents the request to create an asset
type CreateAssetRequest struct {
	Symbol      string          `json:"symbol" binding:"required,max=32"`
	Name        string          `json:"name" binding:"required,max=255"`
	Price       decimal.Decimal `json:"price"`
	AssetTypeID uuid.UUID       `json:"asset_type_id" binding:"required"`
}

// Model builds a new Asset from the request
func (r CreateAssetRequest) Model() (*domain.Asset, error) {
	return &domain.Asset{
		Symbol:      r.Symbol,
		Name:        r.Name,
		Price:       r.Price,
		AssetTypeID: r.AssetTypeID,
	}, nil
}

// UpdateAssetRequest represents a partial update of an asset
type UpdateAssetRequest struct {
	Symbol      *string          `json:"symbol" binding:"omitempty,max=32"`
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"price"`
	AssetTypeID *uuid.UUID       `json:"asset_type_id"`
}

// Apply merge-assigns the fields present in the request
func (r UpdateAssetRequest) Apply(e *domain.Asset) {
	if r.Symbol != nil {
		e.Symbol = *r.Symbol
	}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Price != nil {
		e.Price = *r.Price
	}
	if r.AssetTypeID != nil {
		e.AssetTypeID = *r.AssetTypeID
	}
}

// AssetFilter is the filter descriptor for asset list queries
type AssetFilter struct {
	crud.Page
	Symbol      *string `form:"symbol" json:"symbol"`
	Name        *string `form:"name" json:"name"`
	AssetTypeID *string `form:"asset_type_id" json:"asset_type_id"`
}

// Pagination returns the pagination/sorting part of the filter
func (f AssetFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f AssetFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.Symbol != nil {
		filters["symbol"] = *f.Symbol
	}
	if f.Name != nil {
		filters["name"] = *f.Name
	}
	if f.AssetTypeID != nil {
		if id, err := uuid.Parse(*f.AssetTypeID); err == nil {
			filters["asset_type_id"] = id
		}
	}
	return filters
}
