package crud

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/domain"
)

// Walking every page must visit every active row exactly once, for any
// row count and page size within bounds.
func TestProperty_PaginationIsConsistent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("pages partition the active rows", prop.ForAll(
		func(rowCount, pageSize int) bool {
			db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
				DisableForeignKeyConstraintWhenMigrating: true,
			})
			if err != nil {
				return false
			}
			if err := db.AutoMigrate(&domain.AssetType{}); err != nil {
				return false
			}

			store := NewStore[domain.AssetType, *domain.AssetType](db)
			ctx := context.Background()

			want := make(map[uuid.UUID]bool, rowCount)
			for i := 0; i < rowCount; i++ {
				at := &domain.AssetType{Name: fmt.Sprintf("type-%d", i)}
				if err := store.Create(ctx, at); err != nil {
					return false
				}
				want[at.ID] = true
			}

			seen := make(map[uuid.UUID]bool, rowCount)
			for page := 1; ; page++ {
				items, err := store.List(ctx, ListQuery{Page: Page{Page: page, PageSize: pageSize}})
				if err != nil {
					return false
				}
				if len(items) == 0 {
					break
				}
				if len(items) > pageSize {
					return false
				}
				for _, item := range items {
					if seen[item.ID] {
						// Duplicate across pages
						return false
					}
					seen[item.ID] = true
				}
			}

			if len(seen) != len(want) {
				return false
			}
			total, err := store.Count(ctx, ListQuery{})
			if err != nil {
				return false
			}
			return total == int64(rowCount)
		},
		gen.IntRange(0, 45),
		gen.IntRange(1, 15),
	))

	properties.TestingRun(t)
}
