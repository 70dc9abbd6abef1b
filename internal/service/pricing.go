package service

import (
	"strings"

	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// ResolveUnitPrice returns the price to charge for one unit of an item,
// honoring its pricing mode. Items priced "multiple" require a variation
// label present in the variation map.
func ResolveUnitPrice(item *models.MenuItem, variationLabel string) (decimal.Decimal, error) {
	if item == nil {
		return decimal.Zero, ErrItemNotFound
	}
	if !item.IsAvailable {
		return decimal.Zero, ErrItemUnavailable
	}
	switch item.PricingMode {
	case constants.PricingModeSingle:
		return item.PriceAmount.Decimal, nil
	case constants.PricingModeMultiple:
		label := strings.TrimSpace(variationLabel)
		if label == "" {
			return decimal.Zero, ErrInvalidVariation
		}
		price, ok := item.Variations[label]
		if !ok {
			return decimal.Zero, ErrInvalidVariation
		}
		return price, nil
	default:
		return decimal.Zero, ErrPricingModeInvalid
	}
}

// ValidatePricing checks an item's pricing definition before it is saved.
func ValidatePricing(item *models.MenuItem) error {
	if item == nil {
		return ErrItemNotFound
	}
	switch item.PricingMode {
	case constants.PricingModeSingle:
		if item.PriceAmount.Decimal.IsNegative() {
			return ErrPricingModeInvalid
		}
		return nil
	case constants.PricingModeMultiple:
		if len(item.Variations) == 0 {
			return ErrPricingModeInvalid
		}
		for label, price := range item.Variations {
			if strings.TrimSpace(label) == "" || price.IsNegative() {
				return ErrPricingModeInvalid
			}
		}
		return nil
	default:
		return ErrPricingModeInvalid
	}
}
