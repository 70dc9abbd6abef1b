package main

import (
	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Breakfast", SortOrder: 40, IsActive: true},
		{Name: "Mains", SortOrder: 30, IsActive: true},
		{Name: "Seafood Specials", SortOrder: 20, IsActive: true},
		{Name: "Beverages", SortOrder: 10, IsActive: true},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		err := models.DB.Where("name = ?", cat.Name).First(&existing).Error
		if err == nil {
			stdLog.Printf("category already exists: %s", cat.Name)
			categoryIDs[cat.Name] = existing.ID
			continue
		}
		if err := models.DB.Create(&cat).Error; err != nil {
			stdLog.Printf("failed to create category %s: %v", cat.Name, err)
			continue
		}
		stdLog.Printf("created category: %s", cat.Name)
		categoryIDs[cat.Name] = cat.ID
	}

	price := func(v float64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
	}

	items := []models.MenuItem{
		{
			CategoryID:  categoryIDs["Breakfast"],
			Name:        "Masala Dosa",
			Description: "Crisp rice crepe with spiced potato filling, sambar and chutney",
			PricingMode: constants.PricingModeSingle,
			PriceAmount: price(120),
			SortOrder:   30,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Breakfast"],
			Name:        "Idli Platter",
			Description: "Steamed rice cakes, four per plate, with sambar",
			PricingMode: constants.PricingModeSingle,
			PriceAmount: price(90),
			SortOrder:   20,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Mains"],
			Name:        "Chicken Biryani",
			Description: "Slow-cooked basmati rice with chicken, served with raita",
			PricingMode: constants.PricingModeMultiple,
			Variations: models.PriceMap{
				"Half": decimal.NewFromInt(180),
				"Full": decimal.NewFromInt(320),
			},
			SortOrder:   30,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Mains"],
			Name:        "Veg Thali",
			Description: "Daily rotating curries, dal, rice, rotis and dessert",
			PricingMode: constants.PricingModeSingle,
			PriceAmount: price(220),
			SortOrder:   20,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Seafood Specials"],
			Name:        "Prawn Curry",
			Description: "Coastal-style prawn curry in coconut gravy",
			PricingMode: constants.PricingModeMultiple,
			Variations: models.PriceMap{
				"Regular": decimal.NewFromInt(340),
				"Large":   decimal.NewFromInt(520),
			},
			SortOrder:   30,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Seafood Specials"],
			Name:        "Fish Fry",
			Description: "Whole fish marinated in spices and shallow fried",
			PricingMode: constants.PricingModeSingle,
			PriceAmount: price(280),
			SortOrder:   20,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Beverages"],
			Name:        "Filter Coffee",
			Description: "South Indian filter coffee with frothed milk",
			PricingMode: constants.PricingModeSingle,
			PriceAmount: price(40),
			SortOrder:   30,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Beverages"],
			Name:        "Fresh Lime Soda",
			Description: "Sweet, salted or mixed",
			PricingMode: constants.PricingModeMultiple,
			Variations: models.PriceMap{
				"Sweet":  decimal.NewFromInt(60),
				"Salted": decimal.NewFromInt(60),
				"Mixed":  decimal.NewFromInt(70),
			},
			SortOrder:   20,
			IsAvailable: true,
		},
	}

	for _, item := range items {
		if item.CategoryID == 0 {
			stdLog.Printf("skipping %s: category missing", item.Name)
			continue
		}
		var existing models.MenuItem
		err := models.DB.Where("name = ? AND category_id = ?", item.Name, item.CategoryID).First(&existing).Error
		if err == nil {
			stdLog.Printf("menu item already exists: %s", item.Name)
			continue
		}
		if err := models.DB.Create(&item).Error; err != nil {
			stdLog.Printf("failed to create menu item %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("created menu item: %s", item.Name)
	}

	stdLog.Printf("seed complete")
}
