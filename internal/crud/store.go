package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/response"
)

// Store is the GORM-backed implementation of the generic CRUD contract
// for one resource type. Every operation is atomic at the database's
// commit boundary; the store itself holds no locks across calls, so
// concurrent updates to the same id resolve last-write-wins.
type Store[T any, P Resource[T]] struct {
	db      *gorm.DB
	name    string
	columns map[string]struct{}
}

// NewStore creates a store for the resource type. The column set is taken
// from the model's SortableColumns and used to validate sort_by and to
// drop filter keys that do not name a real column.
func NewStore[T any, P Resource[T]](db *gorm.DB) *Store[T, P] {
	var zero T
	model := P(&zero)

	columns := make(map[string]struct{})
	for _, col := range model.SortableColumns() {
		columns[col] = struct{}{}
	}

	return &Store[T, P]{
		db:      db,
		name:    model.TableName(),
		columns: columns,
	}
}

// Name returns the resource's table name, used as the audit target type.
func (s *Store[T, P]) Name() string {
	return s.name
}

// Create persists a new entity and returns it with generated id and
// timestamps populated. Constraint violations surface as ALREADY_EXISTS.
func (s *Store[T, P]) Create(ctx context.Context, entity P) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return s.mapPersistenceError("create", err)
	}
	return nil
}

// FindByID returns the active entity with the given id. Soft-deleted
// entities are treated as absent.
func (s *Store[T, P]) FindByID(ctx context.Context, id uuid.UUID) (P, error) {
	var entity T
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(
				fmt.Sprintf("%s with ID %s not found", s.name, id), "")
		}
		return nil, s.mapPersistenceError("find", err)
	}
	return P(&entity), nil
}

// findAnyByID loads an entity by id regardless of the active flag.
// Update and delete operate on soft-deleted rows too.
func (s *Store[T, P]) findAnyByID(ctx context.Context, id uuid.UUID) (P, error) {
	var entity T
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(
				fmt.Sprintf("%s with ID %s not found", s.name, id), "")
		}
		return nil, s.mapPersistenceError("find", err)
	}
	return P(&entity), nil
}

// List returns active entities matching the query's filters, sorted and
// paginated. An unknown sort_by falls back to id.
func (s *Store[T, P]) List(ctx context.Context, q ListQuery) ([]P, error) {
	page := q.Page.Normalize()

	tx := s.applyFilters(s.db.WithContext(ctx), q.Filters)
	tx = tx.Order(s.orderClause(page)).
		Offset(page.Skip()).
		Limit(page.PageSize)

	entities := make([]P, 0, page.PageSize)
	if err := tx.Find(&entities).Error; err != nil {
		return nil, s.mapPersistenceError("list", err)
	}
	return entities, nil
}

// Count returns the number of active entities matching the query's
// filters, ignoring pagination.
func (s *Store[T, P]) Count(ctx context.Context, q ListQuery) (int64, error) {
	var total int64
	tx := s.applyFilters(s.db.WithContext(ctx).Model(P(new(T))), q.Filters)
	if err := tx.Count(&total).Error; err != nil {
		return 0, s.mapPersistenceError("count", err)
	}
	return total, nil
}

// Update loads the entity by id (active or not), applies the merge
// function, and persists the result. Only fields the merge function
// assigns change; ModifiedAt advances on save.
func (s *Store[T, P]) Update(ctx context.Context, id uuid.UUID, merge func(P)) (P, error) {
	entity, err := s.findAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merge(entity)

	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, s.mapPersistenceError("update", err)
	}
	return entity, nil
}

// Delete removes the entity with the given id. Soft delete (the default)
// flips is_active to false and keeps the row; hard delete removes the row
// permanently. Returns the entity as of immediately before removal, or
// the soft-deleted record.
func (s *Store[T, P]) Delete(ctx context.Context, id uuid.UUID, hardDelete bool) (P, error) {
	entity, err := s.findAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if hardDelete {
		if err := s.db.WithContext(ctx).Delete(entity).Error; err != nil {
			return nil, s.mapPersistenceError("delete", err)
		}
		return entity, nil
	}

	entity.SetActive(false)
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, s.mapPersistenceError("delete", err)
	}
	return entity, nil
}

// Restore reactivates a soft-deleted entity. An id that resolves to an
// active entity is not a valid restore target and reports NotFound.
func (s *Store[T, P]) Restore(ctx context.Context, id uuid.UUID) (P, error) {
	var entity T
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(
				fmt.Sprintf("Inactive %s with ID %s not found", s.name, id), "")
		}
		return nil, s.mapPersistenceError("restore", err)
	}

	restored := P(&entity)
	restored.SetActive(true)
	if err := s.db.WithContext(ctx).Save(restored).Error; err != nil {
		return nil, s.mapPersistenceError("restore", err)
	}
	return restored, nil
}

// applyFilters builds the AND-combined filter predicate over active rows.
// String values use case-insensitive substring matching, everything else
// exact equality. Keys that do not name a known column are ignored.
func (s *Store[T, P]) applyFilters(tx *gorm.DB, filters map[string]interface{}) *gorm.DB {
	tx = tx.Where("is_active = ?", true)
	for column, value := range filters {
		if value == nil {
			continue
		}
		if _, ok := s.columns[column]; !ok {
			continue
		}
		if str, ok := value.(string); ok {
			tx = tx.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column),
				"%"+strings.ToLower(str)+"%")
		} else {
			tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
		}
	}
	return tx
}

// orderClause validates the requested sort column against the resource's
// column set, falling back to id.
func (s *Store[T, P]) orderClause(page Page) string {
	column := "id"
	if _, ok := s.columns[page.SortBy]; ok {
		column = page.SortBy
	}
	direction := "ASC"
	if page.SortOrder == SortDesc {
		direction = "DESC"
	}
	return column + " " + direction
}

// mapPersistenceError converts store failures into typed application
// errors. Unique and check constraint violations become conflicts; the
// rest surface as internal persistence errors. Nothing is retried here.
func (s *Store[T, P]) mapPersistenceError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return response.NewAlreadyExistsError(
			fmt.Sprintf("%s already exists", s.name), err.Error())
	}
	return response.NewAppError(response.ErrCodeInternal,
		fmt.Sprintf("Failed to %s %s", op, s.name), err.Error())
}

// isUniqueViolation matches driver-specific unique constraint messages
// for the two supported backends (postgres, sqlite).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
