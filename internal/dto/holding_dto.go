package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
)

// CreateHoldingRequest represents the request to create a holding
type CreateHoldingRequest struct {
	Quantity    decimal.Decimal `json:"quantity"`
	PortfolioID uuid.UUID       `json:"portfolio_id" binding:"required"`
	AssetID     uuid.UUID       `json:"asset_id" binding:"required"`
}

// Model builds a new Holding from the request
func (r CreateHoldingRequest) Model() (*domain.Holding, error) {
	return &domain.Holding{
		Quantity:    r.Quantity,
		PortfolioID: r.PortfolioID,
		AssetID:     r.AssetID,
	}, nil
}

// UpdateHoldingRequest represents a partial update of a holding
type UpdateHoldingRequest struct {
	Quantity    *decimal.Decimal `json:"quantity"`
	PortfolioID *uuid.UUID       `json:"portfolio_id"`
	AssetID     *uuid.UUID       `json:"asset_id"`
}

// Apply merge-assigns the fields present in the request
func (r UpdateHoldingRequest) Apply(e *domain.Holding) {
	if r.Quantity != nil {
		e.Quantity = *r.Quantity
	}
	if r.PortfolioID != nil {
		e.PortfolioID = *r.PortfolioID
	}
	if r.AssetID != nil {
		e.AssetID = *r.AssetID
	}
}

// HoldingFilter is the filter descriptor for holding list queries
type HoldingFilter struct {
	crud.Page
	PortfolioID *string `form:"portfolio_id" json:"portfolio_id"`
	AssetID     *string `form:"asset_id" json:"asset_id"`
}

// Pagination returns the pagination/sorting part of the filter
func (f HoldingFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f HoldingFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.PortfolioID != nil {
		if id, err := uuid.Parse(*f.PortfolioID); err == nil {
			filters["portfolio_id"] = id
		}
	}
	if f.AssetID != nil {
		if id, err := uuid.Parse(*f.AssetID); err == nil {
			filters["asset_id"] = id
		}
	}
	return filters
}
