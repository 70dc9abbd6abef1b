package service

import (
	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// BillingBreakdown is the named charge composition of an order total.
type BillingBreakdown struct {
	ItemCount     int          `json:"item_count"`
	TotalQuantity int          `json:"total_quantity"`
	Subtotal      models.Money `json:"subtotal"`
	DeliveryFee   models.Money `json:"delivery_fee"`
	ServiceFee    models.Money `json:"service_fee"`
	Tax           models.Money `json:"tax"`
	TotalAmount   models.Money `json:"total_amount"`
}

// BillingService computes order totals from the configured fee policy.
type BillingService struct {
	cfg *config.BillingConfig
}

// NewBillingService creates a billing service.
func NewBillingService(cfg *config.BillingConfig) *BillingService {
	return &BillingService{cfg: cfg}
}

// Compute derives the full breakdown for a set of cart lines. Pure: the
// same lines always yield the same breakdown. Arithmetic stays unrounded
// until the Money boundary so repeated additions cannot compound rounding
// error.
func (s *BillingService) Compute(lines []models.CartLine) BillingBreakdown {
	subtotal := decimal.Zero
	totalQuantity := 0
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		totalQuantity += line.Quantity
	}

	deliveryFee := decimal.Zero
	serviceFee := decimal.Zero
	tax := decimal.Zero
	if s != nil && s.cfg != nil {
		deliveryFee = decimal.NewFromFloat(s.cfg.DeliveryFee)
		serviceFee = decimal.NewFromFloat(s.cfg.ServiceFee)
		tax = decimal.NewFromFloat(s.cfg.Tax)
	}
	total := subtotal.Add(deliveryFee).Add(serviceFee).Add(tax)
	return BillingBreakdown{
		ItemCount:     len(lines),
		TotalQuantity: totalQuantity,
		Subtotal:      models.NewMoneyFromDecimal(subtotal),
		DeliveryFee:   models.NewMoneyFromDecimal(deliveryFee),
		ServiceFee:    models.NewMoneyFromDecimal(serviceFee),
		Tax:           models.NewMoneyFromDecimal(tax),
		TotalAmount:   models.NewMoneyFromDecimal(total),
	}
}
