package service

import (
	"testing"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func billingLine(itemID uint, label string, price string, quantity int) models.CartLine {
	return models.CartLine{
		ItemID:         itemID,
		VariationLabel: label,
		UnitPrice:      models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Quantity:       quantity,
	}
}

func TestBillingComputeBreakdown(t *testing.T) {
	billing := NewBillingService(&config.BillingConfig{DeliveryFee: 50, ServiceFee: 0, Tax: 0})

	lines := []models.CartLine{
		billingLine(1, "", "100.00", 2),
		billingLine(2, "Large", "150.00", 1),
	}
	breakdown := billing.Compute(lines)
	if got := breakdown.Subtotal.StringFixed(2); got != "350.00" {
		t.Fatalf("subtotal = %s, want 350.00", got)
	}
	if got := breakdown.DeliveryFee.StringFixed(2); got != "50.00" {
		t.Fatalf("delivery fee = %s, want 50.00", got)
	}
	if got := breakdown.ServiceFee.StringFixed(2); got != "0.00" {
		t.Fatalf("service fee = %s, want 0.00", got)
	}
	if got := breakdown.Tax.StringFixed(2); got != "0.00" {
		t.Fatalf("tax = %s, want 0.00", got)
	}
	if got := breakdown.TotalAmount.StringFixed(2); got != "400.00" {
		t.Fatalf("total = %s, want 400.00", got)
	}
	if breakdown.ItemCount != 2 {
		t.Fatalf("item count = %d, want 2", breakdown.ItemCount)
	}
	if breakdown.TotalQuantity != 3 {
		t.Fatalf("total quantity = %d, want 3", breakdown.TotalQuantity)
	}
}

func TestBillingComputeIsStable(t *testing.T) {
	billing := NewBillingService(&config.BillingConfig{DeliveryFee: 50, ServiceFee: 10, Tax: 18})
	lines := []models.CartLine{billingLine(1, "", "123.45", 1)}

	first := billing.Compute(lines)
	second := billing.Compute(lines)
	if first.TotalAmount.StringFixed(2) != second.TotalAmount.StringFixed(2) {
		t.Fatalf("same lines produced different totals: %s vs %s",
			first.TotalAmount.StringFixed(2), second.TotalAmount.StringFixed(2))
	}
	if got := first.TotalAmount.StringFixed(2); got != "201.45" {
		t.Fatalf("total = %s, want 201.45", got)
	}
}

func TestBillingComputeEmptyCartStillCharged(t *testing.T) {
	billing := NewBillingService(&config.BillingConfig{DeliveryFee: 50})
	breakdown := billing.Compute(nil)
	if got := breakdown.TotalAmount.StringFixed(2); got != "50.00" {
		t.Fatalf("total = %s, want 50.00", got)
	}
	if breakdown.ItemCount != 0 || breakdown.TotalQuantity != 0 {
		t.Fatalf("empty cart counts = %d/%d, want 0/0", breakdown.ItemCount, breakdown.TotalQuantity)
	}
}
