// Package crud implements the generic CRUD engine shared by every
// resource type: a GORM-backed store with uniform create, read, list,
// count, merge-update, soft/hard delete, and restore semantics.
package crud

import (
	"github.com/google/uuid"
)

// Entity is the capability surface the engine needs from a domain model:
// identity access and soft-delete flag access/mutation. domain.BaseModel
// satisfies it for every resource.
type Entity interface {
	PrimaryID() uuid.UUID
	Active() bool
	SetActive(active bool)
}

// Resource constrains a pointer-to-model type. The engine operates over
// this interface instead of reflecting on arbitrary attribute names:
// TableName drives persistence mapping, SortableColumns enumerates the
// columns list queries may sort and filter on.
type Resource[T any] interface {
	*T
	Entity
	TableName() string
	SortableColumns() []string
}

// SortOrder values accepted by list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Pagination bounds. Requests outside the bounds are clamped by Page.Normalize.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page carries the pagination and sorting part of a filter descriptor.
type Page struct {
	Page      int    `form:"page" json:"page"`
	PageSize  int    `form:"page_size" json:"page_size"`
	SortBy    string `form:"sort_by" json:"sort_by"`
	SortOrder string `form:"sort_order" json:"sort_order"`
}

// Normalize clamps the page descriptor into its documented bounds:
// page >= 1, 1 <= page_size <= 100, sort_order asc unless desc requested.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.SortOrder != SortDesc {
		p.SortOrder = SortAsc
	}
	return p
}

// Skip translates the page number into a row offset.
func (p Page) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// ListQuery is the full filter descriptor for a list or count operation.
// Fields maps column names to filter values; string values match
// case-insensitive substrings, all other types match exactly. Pagination
// and sorting never participate in the filter predicate.
type ListQuery struct {
	Page    Page
	Filters map[string]interface{}
}
