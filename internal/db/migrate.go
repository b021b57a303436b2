package db

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/util"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Invoice{},
		&model.DistributorDraft{},
		&model.DistributorProfile{},
		&model.Ticket{},
		&model.Resource{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds the fixed demo accounts and baseline catalog data. Safe to run
// repeatedly: each seeder skips when its table already has rows.
func Seed() error {
	logger.Info("Seeding initial data...")

	if err := seedDemoAccounts(); err != nil {
		logger.Error("Failed to seed demo accounts", err)
		return err
	}
	if err := seedProducts(); err != nil {
		logger.Error("Failed to seed products", err)
		return err
	}
	if err := seedResources(); err != nil {
		logger.Error("Failed to seed resources", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// demoPassword is the shared password for the fixed demo accounts
const demoPassword = "1234"

func seedDemoAccounts() error {
	var count int64
	if err := DB.Model(&model.User{}).Where("seeded = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Demo accounts already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	hash, err := util.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	accounts := []model.User{
		{Email: "hanzla@admin.com", Name: "Hanzla", Role: model.RoleAdmin},
		{Email: "distributor@admin.com", Name: "Distributor Admin", Role: model.RoleDistributor},
		{Email: "areeba@admin.com", Name: "Areeba", Role: model.RolePurchasingManager},
		{Email: "kumail@admin.com", Name: "Kumail", Role: model.RoleFinanceManager},
	}
	for i := range accounts {
		accounts[i].PasswordHash = hash
		accounts[i].Seeded = true
	}

	if err := DB.Create(&accounts).Error; err != nil {
		return err
	}

	logger.Info("Demo accounts seeded", map[string]interface{}{
		"count": len(accounts),
	})
	return nil
}

func seedProducts() error {
	var count int64
	if err := DB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []model.Product{
		{Name: "CBD Patch", SKU: "PAT-234", Category: "topicals", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 120},
		{Name: "CBD Salve", SKU: "SAL-101", Category: "topicals", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 80},
		{Name: "CBD Bath Salts", SKU: "BTH-310", Category: "topicals", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 64},
		{Name: "CBD Body Lotion", SKU: "LOT-412", Category: "topicals", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 95},
		{Name: "CBD Lotion", SKU: "LOT-118", Category: "topicals", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 2},
		{Name: "CBD Water", SKU: "DRK-550", Category: "drinks", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 200},
		{Name: "CBD Tea", SKU: "DRK-551", Category: "drinks", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 140},
		{Name: "CBD Energy Drink", SKU: "DRK-552", Category: "drinks", YourPrice: "$10.00", MarketPrice: "$18.00", StockQuantity: 160},
	}

	if err := DB.Create(&products).Error; err != nil {
		return err
	}

	logger.Info("Products seeded", map[string]interface{}{
		"count": len(products),
	})
	return nil
}

func seedResources() error {
	var count int64
	if err := DB.Model(&model.Resource{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	resources := []model.Resource{
		{Title: "Getting started with Distributor OS", Category: "guides", URL: "/docs/getting-started"},
		{Title: "Placing and approving orders", Category: "guides", URL: "/docs/orders"},
		{Title: "Invoice & billing walkthrough", Category: "billing", URL: "/docs/billing"},
		{Title: "Distributor onboarding checklist", Category: "onboarding", URL: "/docs/onboarding"},
	}

	return DB.Create(&resources).Error
}
