package job

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/repository"
)

func TestAuditCleanupJob_Run(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AuditLog{}))

	repo := repository.NewAuditLogRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &domain.AuditLog{
		UserID: uuid.New(), Action: "create", TargetType: "users",
		Timestamp: now.AddDate(0, 0, -120),
	}))
	require.NoError(t, repo.Create(ctx, &domain.AuditLog{
		UserID: uuid.New(), Action: "create", TargetType: "users",
		Timestamp: now,
	}))

	job := NewAuditCleanupJob(repo, 90, "0 3 * * *", zap.NewNop())
	job.Run()

	var count int64
	require.NoError(t, db.Model(&domain.AuditLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuditCleanupJob_DisabledRetention(t *testing.T) {
	job := NewAuditCleanupJob(nil, 0, "0 3 * * *", zap.NewNop())

	require.NoError(t, job.Start())
	assert.NotPanics(t, job.Stop)
}
