package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/metrics"
)

// newTestMetrics creates an isolated metrics instance so tests do not
// collide on the default Prometheus registry.
func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
}

// MockAuditLogRepository is a mock implementation of repository.AuditLogRepository
type MockAuditLogRepository struct {
	CreateFunc          func(ctx context.Context, entry *domain.AuditLog) error
	FindByUserIDFunc    func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditLog, error)
	FindByTargetFunc    func(ctx context.Context, targetType string, targetID uuid.UUID, limit int) ([]*domain.AuditLog, error)
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockAuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockAuditLogRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditLog, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *MockAuditLogRepository) FindByTarget(ctx context.Context, targetType string, targetID uuid.UUID, limit int) ([]*domain.AuditLog, error) {
	if m.FindByTargetFunc != nil {
		return m.FindByTargetFunc(ctx, targetType, targetID, limit)
	}
	return nil, nil
}

func (m *MockAuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

// MockPortfolioLedgerRepository is a mock implementation of repository.PortfolioLedgerRepository
type MockPortfolioLedgerRepository struct {
	CreateFunc            func(ctx context.Context, entry *domain.PortfolioLedger) error
	FindByPortfolioIDFunc func(ctx context.Context, portfolioID uuid.UUID, limit int) ([]*domain.PortfolioLedger, error)
}

func (m *MockPortfolioLedgerRepository) Create(ctx context.Context, entry *domain.PortfolioLedger) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockPortfolioLedgerRepository) FindByPortfolioID(ctx context.Context, portfolioID uuid.UUID, limit int) ([]*domain.PortfolioLedger, error) {
	if m.FindByPortfolioIDFunc != nil {
		return m.FindByPortfolioIDFunc(ctx, portfolioID, limit)
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// MockBlacklist is a mock implementation of auth.Blacklist
type MockBlacklist struct {
	RevokeFunc    func(ctx context.Context, tokenID string, until time.Time) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)
}

func (m *MockBlacklist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, tokenID, until)
	}
	return nil
}

func (m *MockBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, tokenID)
	}
	return false, nil
}
