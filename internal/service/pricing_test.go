package service

import (
	"errors"
	"testing"

	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func singleItem(price string) *models.MenuItem {
	return &models.MenuItem{
		ID:          1,
		Name:        "Masala Dosa",
		PricingMode: constants.PricingModeSingle,
		PriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		IsAvailable: true,
	}
}

func multiItem() *models.MenuItem {
	return &models.MenuItem{
		ID:          2,
		Name:        "Biryani",
		PricingMode: constants.PricingModeMultiple,
		Variations: models.PriceMap{
			"Half": decimal.RequireFromString("180.00"),
			"Full": decimal.RequireFromString("320.00"),
		},
		IsAvailable: true,
	}
}

func TestResolveUnitPriceSingle(t *testing.T) {
	price, err := ResolveUnitPrice(singleItem("120.00"), "")
	if err != nil {
		t.Fatalf("resolve single price failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("expected 120.00, got %s", price)
	}
}

func TestResolveUnitPriceSingleIgnoresVariation(t *testing.T) {
	price, err := ResolveUnitPrice(singleItem("120.00"), "Large")
	if err != nil {
		t.Fatalf("resolve single price failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("expected 120.00, got %s", price)
	}
}

func TestResolveUnitPriceMultiple(t *testing.T) {
	price, err := ResolveUnitPrice(multiItem(), "Full")
	if err != nil {
		t.Fatalf("resolve variation price failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("320.00")) {
		t.Fatalf("expected 320.00, got %s", price)
	}
}

func TestResolveUnitPriceMissingVariation(t *testing.T) {
	if _, err := ResolveUnitPrice(multiItem(), ""); !errors.Is(err, ErrInvalidVariation) {
		t.Fatalf("expected ErrInvalidVariation for empty label, got %v", err)
	}
	if _, err := ResolveUnitPrice(multiItem(), "Jumbo"); !errors.Is(err, ErrInvalidVariation) {
		t.Fatalf("expected ErrInvalidVariation for unknown label, got %v", err)
	}
}

func TestResolveUnitPriceUnavailable(t *testing.T) {
	item := singleItem("120.00")
	item.IsAvailable = false
	if _, err := ResolveUnitPrice(item, ""); !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
}

func TestResolveUnitPriceUnknownMode(t *testing.T) {
	item := singleItem("120.00")
	item.PricingMode = "tiered"
	if _, err := ResolveUnitPrice(item, ""); !errors.Is(err, ErrPricingModeInvalid) {
		t.Fatalf("expected ErrPricingModeInvalid, got %v", err)
	}
}

func TestValidatePricing(t *testing.T) {
	if err := ValidatePricing(singleItem("0.00")); err != nil {
		t.Fatalf("zero single price should validate: %v", err)
	}
	if err := ValidatePricing(multiItem()); err != nil {
		t.Fatalf("variation map should validate: %v", err)
	}

	empty := multiItem()
	empty.Variations = models.PriceMap{}
	if err := ValidatePricing(empty); !errors.Is(err, ErrPricingModeInvalid) {
		t.Fatalf("expected ErrPricingModeInvalid for empty variations, got %v", err)
	}

	negative := singleItem("120.00")
	negative.PriceAmount = models.NewMoneyFromDecimal(decimal.RequireFromString("-1"))
	if err := ValidatePricing(negative); !errors.Is(err, ErrPricingModeInvalid) {
		t.Fatalf("expected ErrPricingModeInvalid for negative price, got %v", err)
	}
}
