package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
)

// CreateETFRequest represents the request to create an ETF
type CreateETFRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	Symbol string `json:"symbol" binding:"required,max=32"`
}

// Model builds a new ETF from the request
func (r CreateETFRequest) Model() (*domain.ETF, error) {
	return &domain.ETF{
		Name:   r.Name,
		Symbol: r.Symbol,
	}, nil
}

// UpdateETFRequest represents a partial update of an ETF
type UpdateETFRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	Symbol *string `json:"symbol" binding:"omitempty,max=32"`
}

// Apply merge-assigns the fields present in the request
func (r UpdateETFRequest) Apply(e *domain.ETF) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Symbol != nil {
		e.Symbol = *r.Symbol
	}
}

// ETFFilter is the filter descriptor for ETF list queries
type ETFFilter struct {
	crud.Page
	Name   *string `form:"name" json:"name"`
	Symbol *string `form:"symbol" json:"symbol"`
}

// Pagination returns the pagination/sorting part of the filter
func (f ETFFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f ETFFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.Name != nil {
		filters["name"] = *f.Name
	}
	if f.Symbol != nil {
		filters["symbol"] = *f.Symbol
	}
	return filters
}

// CreateTopHoldingRequest represents the request to create a top holding
type CreateTopHoldingRequest struct {
	Symbol string          `json:"symbol" binding:"required,max=32"`
	Weight decimal.Decimal `json:"weight"`
	ETFID  uuid.UUID       `json:"etf_id" binding:"required"`
}

// Model builds a new TopHolding from the request
func (r CreateTopHoldingRequest) Model() (*domain.TopHolding, error) {
	return &domain.TopHolding{
		Symbol: r.Symbol,
		Weight: r.Weight,
		ETFID:  r.ETFID,
	}, nil
}

// UpdateTopHoldingRequest represents a partial update of a top holding
type UpdateTopHoldingRequest struct {
	Symbol *string          `json:"symbol" binding:"omitempty,max=32"`
	Weight *decimal.Decimal `json:"weight"`
	ETFID  *uuid.UUID       `json:"etf_id"`
}

// Apply merge-assigns the fields present in the request
func (r UpdateTopHoldingRequest) Apply(e *domain.TopHolding) {
	if r.Symbol != nil {
		e.Symbol = *r.Symbol
	}
	if r.Weight != nil {
		e.Weight = *r.Weight
	}
	if r.ETFID != nil {
		e.ETFID = *r.ETFID
	}
}

// TopHoldingFilter is the filter descriptor for top holding list queries
type TopHoldingFilter struct {
	crud.Page
	Symbol *string `form:"symbol" json:"symbol"`
	ETFID  *string `form:"etf_id" json:"etf_id"`
}

// Pagination returns the pagination/sorting part of the filter
func (f TopHoldingFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f TopHoldingFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.Symbol != nil {
		filters["symbol"] = *f.Symbol
	}
	if f.ETFID != nil {
		if id, err := uuid.Parse(*f.ETFID); err == nil {
			filters["etf_id"] = id
		}
	}
	return filters
}
