package database

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio-workbench-api/internal/domain"
)

// AutoMigrate creates or updates the schema for all entities.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.AssetType{},
		&domain.Asset{},
		&domain.Portfolio{},
		&domain.Holding{},
		&domain.ETF{},
		&domain.TopHolding{},
		&domain.AuditLog{},
		&domain.PortfolioLedger{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
