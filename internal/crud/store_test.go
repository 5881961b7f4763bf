package crud

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/response"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to open database")

	require.NoError(t, db.AutoMigrate(&domain.AssetType{}, &domain.User{}))
	return db
}

func createAssetType(t *testing.T, store *Store[domain.AssetType, *domain.AssetType], name, description string) *domain.AssetType {
	at := &domain.AssetType{Name: name, Description: description}
	require.NoError(t, store.Create(context.Background(), at))
	return at
}

func TestStore_CreateAndFindByID(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "stock", "Publicly traded equities")

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "stock", found.Name)
	assert.Equal(t, "Publicly traded equities", found.Description)
}

func TestStore_FindByID_NotFound(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)

	_, err := store.FindByID(context.Background(), uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestStore_Create_DuplicateConflict(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.User, *domain.User](db)
	ctx := context.Background()

	first := &domain.User{Username: "alice", Email: "alice@example.com", HashedPassword: "x"}
	require.NoError(t, store.Create(ctx, first))

	dup := &domain.User{Username: "alice2", Email: "alice@example.com", HashedPassword: "y"}
	err := store.Create(ctx, dup)
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeAlreadyExists, appErr.Code)
}

func TestStore_SoftDeleteIsReversible(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "crypto", "Digital assets")

	deleted, err := store.Delete(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	// Soft-deleted rows are invisible to reads
	_, err = store.FindByID(ctx, created.ID)
	require.Error(t, err)

	restored, err := store.Restore(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Equal(t, "crypto", restored.Name)
	assert.Equal(t, "Digital assets", restored.Description)

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestStore_Restore_ActiveRowNotFound(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "cash", "")

	_, err := store.Restore(ctx, created.ID)
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestStore_HardDeleteIsPermanent(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "etf", "")

	removed, err := store.Delete(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = store.FindByID(ctx, created.ID)
	require.Error(t, err)

	_, err = store.Restore(ctx, created.ID)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.AssetType{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStore_Update_MergesAndAdvancesModifiedAt(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "fixed-income", "Bonds")
	before := created.ModifiedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := store.Update(ctx, created.ID, func(at *domain.AssetType) {
		at.Description = "Bonds and bills"
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-income", updated.Name, "untouched field must not change")
	assert.Equal(t, "Bonds and bills", updated.Description)
	assert.True(t, updated.ModifiedAt.After(before))
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestStore_Update_NotFound(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)

	_, err := store.Update(context.Background(), uuid.New(), func(at *domain.AssetType) {})
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestStore_Update_ReachesSoftDeletedRows(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "custom", "")
	_, err := store.Delete(ctx, created.ID, false)
	require.NoError(t, err)

	updated, err := store.Update(ctx, created.ID, func(at *domain.AssetType) {
		at.Description = "user defined"
	})
	require.NoError(t, err)
	assert.Equal(t, "user defined", updated.Description)
	assert.False(t, updated.IsActive, "update must not resurrect a soft-deleted row")
}

func TestStore_List_StringFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	createAssetType(t, store, "Stock", "")
	createAssetType(t, store, "Preferred Stock", "")
	createAssetType(t, store, "Crypto", "")

	items, err := store.List(ctx, ListQuery{Filters: map[string]interface{}{"name": "stock"}})
	require.NoError(t, err)
	require.Len(t, items, 2)

	total, err := store.Count(ctx, ListQuery{Filters: map[string]interface{}{"name": "stock"}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestStore_List_FiltersAreANDCombined(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	createAssetType(t, store, "stock", "US equities")
	createAssetType(t, store, "stock", "EU equities")

	items, err := store.List(ctx, ListQuery{Filters: map[string]interface{}{
		"name":        "stock",
		"description": "eu",
	}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "EU equities", items[0].Description)
}

func TestStore_List_UnknownFilterKeyIgnored(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	createAssetType(t, store, "stock", "")
	createAssetType(t, store, "crypto", "")

	items, err := store.List(ctx, ListQuery{Filters: map[string]interface{}{"no_such_column": "x"}})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestStore_List_ExcludesInactive(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	keep := createAssetType(t, store, "stock", "")
	gone := createAssetType(t, store, "crypto", "")
	_, err := store.Delete(ctx, gone.ID, false)
	require.NoError(t, err)

	items, err := store.List(ctx, ListQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	total, err := store.Count(ctx, ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestStore_List_SortAndFallback(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	createAssetType(t, store, "bravo", "")
	createAssetType(t, store, "alpha", "")
	createAssetType(t, store, "charlie", "")

	items, err := store.List(ctx, ListQuery{Page: Page{SortBy: "name", SortOrder: SortDesc}})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "charlie", items[0].Name)
	assert.Equal(t, "alpha", items[2].Name)

	// Unknown sort column falls back to id instead of failing
	items, err = store.List(ctx, ListQuery{Page: Page{SortBy: "evil; DROP TABLE asset_types"}})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestStore_List_Pagination(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		createAssetType(t, store, "type", "")
	}

	page3, err := store.List(ctx, ListQuery{Page: Page{Page: 3, PageSize: 10}})
	require.NoError(t, err)
	assert.Len(t, page3, 5)

	page4, err := store.List(ctx, ListQuery{Page: Page{Page: 4, PageSize: 10}})
	require.NoError(t, err)
	assert.Empty(t, page4)

	total, err := store.Count(ctx, ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
}

func TestStore_AssetTypeLifecycle(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore[domain.AssetType, *domain.AssetType](db)
	ctx := context.Background()

	created := createAssetType(t, store, "stock", "Equities")

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Equities", found.Description)

	_, err = store.Update(ctx, created.ID, func(at *domain.AssetType) {
		at.Description = "Listed equities"
	})
	require.NoError(t, err)

	_, err = store.Delete(ctx, created.ID, false)
	require.NoError(t, err)
	_, err = store.FindByID(ctx, created.ID)
	require.Error(t, err)

	restored, err := store.Restore(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Listed equities", restored.Description)

	_, err = store.Delete(ctx, created.ID, true)
	require.NoError(t, err)
	_, err = store.Restore(ctx, created.ID)
	require.Error(t, err)
}

func TestPage_Normalize(t *testing.T) {
	p := Page{}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, SortAsc, p.SortOrder)

	p = Page{Page: -5, PageSize: 1000, SortOrder: "sideways"}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, SortAsc, p.SortOrder)

	p = Page{Page: 3, PageSize: 20, SortOrder: SortDesc}.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, SortDesc, p.SortOrder)
	assert.Equal(t, 40, p.Skip())
}
