package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"portfolio-workbench-api/internal/config"
	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/metrics"
	"portfolio-workbench-api/internal/repository"
)

// AuditService records who did what to which entity. Writes happen after
// the primary mutation has committed; an audit failure is logged and
// counted but never rolls the mutation back.
type AuditService interface {
	// RecordWrite logs a mutating operation. Always recorded.
	RecordWrite(ctx context.Context, userID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{})
	// RecordRead logs a read operation. Recorded only under the "all" policy.
	RecordRead(ctx context.Context, userID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{})
	// RecentByUser returns the most recent records for a user.
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditLog, error)
	// RecentByTarget returns the most recent records for one entity.
	RecentByTarget(ctx context.Context, targetType string, targetID uuid.UUID, limit int) ([]*domain.AuditLog, error)
}

// auditServiceImpl is the implementation of AuditService
type auditServiceImpl struct {
	repo    repository.AuditLogRepository
	policy  string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewAuditService creates a new AuditService with the given policy
// (config.AuditPolicyAll or config.AuditPolicyWrite).
func NewAuditService(repo repository.AuditLogRepository, policy string, logger *zap.Logger, m *metrics.Metrics) AuditService {
	return &auditServiceImpl{
		repo:    repo,
		policy:  policy,
		logger:  logger,
		metrics: m,
	}
}

func (s *auditServiceImpl) RecordWrite(ctx context.Context, userID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{}) {
	s.record(ctx, userID, action, targetType, targetID, details)
}

func (s *auditServiceImpl) RecordRead(ctx context.Context, userID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{}) {
	if s.policy != config.AuditPolicyAll {
		return
	}
	s.record(ctx, userID, action, targetType, targetID, details)
}

func (s *auditServiceImpl) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.FindByUserID(ctx, userID, limit)
}

func (s *auditServiceImpl) RecentByTarget(ctx context.Context, targetType string, targetID uuid.UUID, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.FindByTarget(ctx, targetType, targetID, limit)
}

func (s *auditServiceImpl) record(ctx context.Context, userID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{}) {
	var payload datatypes.JSON
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			s.logger.Error("Failed to marshal audit details",
				zap.String("action", action),
				zap.String("target_type", targetType),
				zap.Error(err),
			)
		} else {
			payload = datatypes.JSON(data)
		}
	}

	entry := &domain.AuditLog{
		UserID:     userID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    payload,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		// The primary mutation already committed; surface the gap in
		// logs and metrics instead of failing the request.
		s.metrics.IncrementAuditFailure()
		s.logger.Error("Failed to write audit record",
			zap.String("user_id", userID.String()),
			zap.String("action", action),
			zap.String("target_type", targetType),
			zap.Error(err),
		)
		return
	}

	s.metrics.IncrementAuditRecord(action)
	s.logger.Info("User action logged",
		zap.String("user_id", userID.String()),
		zap.String("action", action),
		zap.String("target_type", targetType),
	)
}
