package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/metrics"
	"portfolio-workbench-api/internal/repository"
)

// LedgerService keeps a per-portfolio history of structural changes.
// Like audit records, ledger entries are written after the primary
// mutation and never fail the request.
type LedgerService interface {
	RecordChange(ctx context.Context, portfolioID uuid.UUID, changeType string, details map[string]interface{})
	History(ctx context.Context, portfolioID uuid.UUID, limit int) ([]*domain.PortfolioLedger, error)
}

type ledgerServiceImpl struct {
	repo    repository.PortfolioLedgerRepository
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repo repository.PortfolioLedgerRepository, logger *zap.Logger, m *metrics.Metrics) LedgerService {
	return &ledgerServiceImpl{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

func (s *ledgerServiceImpl) RecordChange(ctx context.Context, portfolioID uuid.UUID, changeType string, details map[string]interface{}) {
	var payload datatypes.JSON
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			s.logger.Error("Failed to marshal ledger details",
				zap.String("portfolio_id", portfolioID.String()),
				zap.String("change_type", changeType),
				zap.Error(err),
			)
		} else {
			payload = datatypes.JSON(data)
		}
	}

	entry := &domain.PortfolioLedger{
		PortfolioID: portfolioID,
		ChangeType:  changeType,
		Details:     payload,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write ledger entry",
			zap.String("portfolio_id", portfolioID.String()),
			zap.String("change_type", changeType),
			zap.Error(err),
		)
		return
	}

	s.metrics.IncrementLedgerEntry()
}

func (s *ledgerServiceImpl) History(ctx context.Context, portfolioID uuid.UUID, limit int) ([]*domain.PortfolioLedger, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.FindByPortfolioID(ctx, portfolioID, limit)
}
