package repository

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
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AuditLog{}))
	return db
}

func TestAuditLogRepository_CreateAndFindByUserID(t *testing.T) {
	db := setupAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	otherUser := uuid.New()
	now := time.Now().UTC()

	for i, action := range []string{"create", "update", "delete"} {
		entry := &domain.AuditLog{
			UserID:     userID,
			Action:     action,
			TargetType: "portfolios",
			Timestamp:  now.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, entry))
	}
	require.NoError(t, repo.Create(ctx, &domain.AuditLog{
		UserID:     otherUser,
		Action:     "create",
		TargetType: "assets",
		Timestamp:  now,
	}))

	entries, err := repo.FindByUserID(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "delete", entries[0].Action, "newest first")

	limited, err := repo.FindByUserID(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestAuditLogRepository_FindByTarget(t *testing.T) {
	db := setupAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	targetID := uuid.New()
	require.NoError(t, repo.Create(ctx, &domain.AuditLog{
		UserID:     uuid.New(),
		Action:     "update",
		TargetType: "holdings",
		TargetID:   &targetID,
		Timestamp:  time.Now().UTC(),
	}))
	require.NoError(t, repo.Create(ctx, &domain.AuditLog{
		UserID:     uuid.New(),
		Action:     "update",
		TargetType: "holdings",
		TargetID:   ptrUUID(uuid.New()),
		Timestamp:  time.Now().UTC(),
	}))

	entries, err := repo.FindByTarget(ctx, "holdings", targetID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, targetID, *entries[0].TargetID)
}

func TestAuditLogRepository_DeleteOlderThan(t *testing.T) {
	db := setupAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := &domain.AuditLog{UserID: uuid.New(), Action: "create", TargetType: "users", Timestamp: now.AddDate(0, 0, -100)}
	recent := &domain.AuditLog{UserID: uuid.New(), Action: "create", TargetType: "users", Timestamp: now}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	deleted, err := repo.DeleteOlderThan(ctx, now.AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var count int64
	require.NoError(t, db.Model(&domain.AuditLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func ptrUUID(id uuid.UUID) *uuid.UUID {
	return &id
}
