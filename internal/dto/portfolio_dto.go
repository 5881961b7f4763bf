package dto

import (
	"github.com/google/uuid"

	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
)

// CreatePortfolioRequest represents the request to create a portfolio
type CreatePortfolioRequest struct {
	Name   string    `json:"name" binding:"required,max=255"`
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// Model builds a new Portfolio from the request
func (r CreatePortfolioRequest) Model() (*domain.Portfolio, error) {
	return &domain.Portfolio{
		Name:   r.Name,
		UserID: r.UserID,
	}, nil
}

// UpdatePortfolioRequest represents a partial update of a portfolio
type UpdatePortfolioRequest struct {
	Name   *string    `json:"name" binding:"omitempty,max=255"`
	UserID *uuid.UUID `json:"user_id"`
}

// Apply merge-assigns the fields present in the request
func (r UpdatePortfolioRequest) Apply(e *domain.Portfolio) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.UserID != nil {
		e.UserID = *r.UserID
	}
}

// PortfolioFilter is the filter descriptor for portfolio list queries
type PortfolioFilter struct {
	crud.Page
	Name   *string `form:"name" json:"name"`
	UserID *string `form:"user_id" json:"user_id"`
}

// Pagination returns the pagination/sorting part of the filter
func (f PortfolioFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f PortfolioFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.Name != nil {
		filters["name"] = *f.Name
	}
	if f.UserID != nil {
		if id, err := uuid.Parse(*f.UserID); err == nil {
			filters["user_id"] = id
		}
	}
	return filters
}
