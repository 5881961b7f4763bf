package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/auth"
	"portfolio-workbench-api/internal/config"
	"portfolio-workbench-api/internal/domain"
)

var defaultAssetTypes = []domain.AssetType{
	{Name: "stock", Description: "Publicly traded equities"},
	{Name: "crypto", Description: "Cryptocurrencies and digital assets"},
	{Name: "etf", Description: "Exchange-traded funds"},
	{Name: "cash", Description: "Cash and cash equivalents"},
	{Name: "fixed-income", Description: "Bonds and other fixed-income instruments"},
	{Name: "custom", Description: "User-defined asset category"},
}

// Seed inserts the default asset types and, when configured, the root
// user. Existing rows are left untouched, so seeding is safe to run on
// every start.
func Seed(db *gorm.DB, cfg config.SeedConfig, logger *zap.Logger) error {
	for _, at := range defaultAssetTypes {
		var count int64
		if err := db.Model(&domain.AssetType{}).
			Where("name = ?", at.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check asset type %q: %w", at.Name, err)
		}
		if count > 0 {
			continue
		}
		seeded := at
		if err := db.Create(&seeded).Error; err != nil {
			return fmt.Errorf("failed to seed asset type %q: %w", at.Name, err)
		}
		logger.Info("Seeded asset type", zap.String("name", at.Name))
	}

	if cfg.RootEmail == "" || cfg.RootPassword == "" {
		logger.Info("Skipping root user seed, no credentials configured")
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).
		Where("email = ?", cfg.RootEmail).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check root user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.RootPassword)
	if err != nil {
		return fmt.Errorf("failed to hash root password: %w", err)
	}
	root := domain.User{
		Username:       "root",
		Email:          cfg.RootEmail,
		HashedPassword: hashed,
	}
	if err := db.Create(&root).Error; err != nil {
		return fmt.Errorf("failed to seed root user: %w", err)
	}
	logger.Info("Seeded root user", zap.String("email", cfg.RootEmail))
	return nil
}
