package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/domain"
)

// PortfolioLedgerRepository defines the interface for the append-only
// portfolio change ledger.
type PortfolioLedgerRepository interface {
	Create(ctx context.Context, entry *domain.PortfolioLedger) error
	FindByPortfolioID(ctx context.Context, portfolioID uuid.UUID, limit int) ([]*domain.PortfolioLedger, error)
}

// portfolioLedgerRepositoryImpl is the GORM implementation of PortfolioLedgerRepository
type portfolioLedgerRepositoryImpl struct {
	db *gorm.DB
}

// NewPortfolioLedgerRepository creates a new instance of PortfolioLedgerRepository
func NewPortfolioLedgerRepository(db *gorm.DB) PortfolioLedgerRepository {
	return &portfolioLedgerRepositoryImpl{db: db}
}

// Create appends a new ledger entry
func (r *portfolioLedgerRepositoryImpl) Create(ctx context.Context, entry *domain.PortfolioLedger) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByPortfolioID returns the most recent ledger entries for a portfolio
func (r *portfolioLedgerRepositoryImpl) FindByPortfolioID(ctx context.Context, portfolioID uuid.UUID, limit int) ([]*domain.PortfolioLedger, error) {
	var entries []*domain.PortfolioLedger
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
