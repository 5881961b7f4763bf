package dto

import (
	"portfolio-workbench-api/internal/auth"
	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
)

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Model builds a new User from the request, hashing the password
func (r CreateUserRequest) Model() (*domain.User, error) {
	hashed, err := auth.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		Username:       r.Username,
		Email:          r.Email,
		HashedPassword: hashed,
	}, nil
}

// UpdateUserRequest represents a partial update of a user
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// Apply merge-assigns the fields present in the request
func (r UpdateUserRequest) Apply(e *domain.User) {
	if r.Username != nil {
		e.Username = *r.Username
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
}

// UserFilter is the filter descriptor for user list queries
type UserFilter struct {
	crud.Page
	Username *string `form:"username" json:"username"`
	Email    *string `form:"email" json:"email"`
}

// Pagination returns the pagination/sorting part of the filter
func (f UserFilter) Pagination() crud.Page {
	return f.Page
}

// FieldFilters returns the field predicate part of the filter
func (f UserFilter) FieldFilters() map[string]interface{} {
	filters := make(map[string]interface{})
	if f.Username != nil {
		filters["username"] = *f.Username
	}
	if f.Email != nil {
		filters["email"] = *f.Email
	}
	return filters
}
