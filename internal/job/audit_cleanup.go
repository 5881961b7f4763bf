package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"portfolio-workbench-api/internal/repository"
)

// AuditCleanupJob purges audit records older than the retention window
// on a cron schedule.
type AuditCleanupJob struct {
	repo          repository.AuditLogRepository
	retentionDays int
	schedule      string
	logger        *zap.Logger
	cron          *cron.Cron
}

// NewAuditCleanupJob creates the retention job. A retention of zero or
// less disables it.
func NewAuditCleanupJob(repo repository.AuditLogRepository, retentionDays int, schedule string, logger *zap.Logger) *AuditCleanupJob {
	return &AuditCleanupJob{
		repo:          repo,
		retentionDays: retentionDays,
		schedule:      schedule,
		logger:        logger,
	}
}

// Start registers the cron entry and starts the scheduler.
func (j *AuditCleanupJob) Start() error {
	if j.retentionDays <= 0 {
		j.logger.Info("Audit retention disabled, cleanup job not scheduled")
		return nil
	}

	j.cron = cron.New()
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("Audit cleanup job scheduled",
		zap.String("schedule", j.schedule),
		zap.Int("retention_days", j.retentionDays),
	)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (j *AuditCleanupJob) Stop() {
	if j.cron == nil {
		return
	}
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// Run purges expired audit records once. Exposed so it can be invoked
// outside the schedule.
func (j *AuditCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)
	deleted, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("Audit cleanup failed", zap.Error(err))
		return
	}
	j.logger.Info("Audit cleanup completed",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
	)
}
