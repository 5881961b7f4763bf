// Package dto defines the request/response shapes for each resource
// type. Update requests use pointer fields so only fields explicitly
// present in the payload are merge-assigned onto the stored entity.
package dto

import (
	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
)

// CreateAssetTypeRequest represents the request to create an asset type
type CreateAssetTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// Model builds a new AssetType from the request
func (r CreateAssetTypeRequest) Model() (*domain.AssetType, error) {
	return &domain.AssetType{
		Name:        r.Name,
		Description: r.Description,
	}, nil
}

// UpdateAssetTypeRequest represents a partial update of an asset type
type UpdateAssetTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// Apply merge-assigns the fields present in the request
func (r UpdateAssetTypeRequest) Apply(e *domain.AssetType) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
}

// AssetTypeFilter is the filter descriptor for asset type list queries
type AssetTypeFilter struct {
	crud.Page
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
}

// Pagination returns the pagination/sorting part of the filter
func (f AssetTypeFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f AssetTypeFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.Name != nil {
		filters["name"] = *f.Name
	}
	if f.Description != nil {
		filters["description"] = *f.Description
	}
	return filters
}
