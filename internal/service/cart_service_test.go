package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartState{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newCartFixture(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	menuRepo := repository.NewMenuItemRepository(db)

	dosa := models.MenuItem{
		CategoryID:  1,
		Name:        "Masala Dosa",
		PricingMode: constants.PricingModeSingle,
		PriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("120.00")),
		IsAvailable: true,
	}
	biryani := models.MenuItem{
		CategoryID:  1,
		Name:        "Biryani",
		PricingMode: constants.PricingModeMultiple,
		Variations: models.PriceMap{
			"Half": decimal.RequireFromString("180.00"),
			"Full": decimal.RequireFromString("320.00"),
		},
		IsAvailable: true,
	}
	if err := menuRepo.Create(&dosa); err != nil {
		t.Fatalf("create dosa failed: %v", err)
	}
	if err := menuRepo.Create(&biryani); err != nil {
		t.Fatalf("create biryani failed: %v", err)
	}

	billing := NewBillingService(&config.BillingConfig{DeliveryFee: 50})
	return NewCartService(repository.NewCartRepository(db), menuRepo, billing), db
}

func TestCartAddLineMergesSameSelection(t *testing.T) {
	cart, _ := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", view.Lines[0].Quantity)
	}
	if got := view.Subtotal.StringFixed(2); got != "600.00" {
		t.Fatalf("subtotal = %s, want 600.00", got)
	}
}

func TestCartAddLineVariationsStayDistinct(t *testing.T) {
	cart, _ := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 2, VariationLabel: "Half", Quantity: 1}); err != nil {
		t.Fatalf("add half failed: %v", err)
	}
	view, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 2, VariationLabel: "Full", Quantity: 1})
	if err != nil {
		t.Fatalf("add full failed: %v", err)
	}

	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 lines for distinct variations, got %d", len(view.Lines))
	}
	if got := view.Subtotal.StringFixed(2); got != "500.00" {
		t.Fatalf("subtotal = %s, want 500.00", got)
	}
}

func TestCartAddLineInstructionsReplacedOnlyWhenProvided(t *testing.T) {
	cart, _ := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1, SpecialInstructions: "extra chutney"}); err != nil {
		t.Fatalf("add with instructions failed: %v", err)
	}
	view, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1})
	if err != nil {
		t.Fatalf("merge add failed: %v", err)
	}
	if view.Lines[0].SpecialInstructions != "extra chutney" {
		t.Fatalf("instructions lost on merge: %q", view.Lines[0].SpecialInstructions)
	}

	view, err = cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1, SpecialInstructions: "no onion"})
	if err != nil {
		t.Fatalf("merge add with new instructions failed: %v", err)
	}
	if view.Lines[0].SpecialInstructions != "no onion" {
		t.Fatalf("instructions not replaced: %q", view.Lines[0].SpecialInstructions)
	}
}

func TestCartAddLineRejectsBadInput(t *testing.T) {
	cart, _ := newCartFixture(t)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 1, Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 999, Quantity: 1}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 2, VariationLabel: "Jumbo", Quantity: 1}); !errors.Is(err, ErrInvalidVariation) {
		t.Fatalf("expected ErrInvalidVariation, got %v", err)
	}
}

func TestCartAddLineRejectsUnavailableItem(t *testing.T) {
	cart, db := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.MenuItem{}).Where("id = ?", 1).
		Update("is_available", false).Error; err != nil {
		t.Fatalf("mark unavailable failed: %v", err)
	}

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1}); !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
	view, err := cart.Get(customerID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 1 {
		t.Fatalf("rejected add must leave cart unchanged: %+v", view.Lines)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart, _ := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := cart.SetQuantity(customerID, 1, "", 0)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Lines))
	}
}

func TestCartSetQuantityMissingLineIsNoop(t *testing.T) {
	cart, _ := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := cart.SetQuantity(customerID, 999, "", 4)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("missing line should not change cart: %+v", view.Lines)
	}
}

func TestCartPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	cart, db := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := db.Model(&models.MenuItem{}).Where("id = ?", 1).
		Update("price_amount", "999.00").Error; err != nil {
		t.Fatalf("update catalog price failed: %v", err)
	}

	view, err := cart.Get(customerID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if got := view.Lines[0].UnitPrice.StringFixed(2); got != "120.00" {
		t.Fatalf("snapshot price changed: %s", got)
	}
}

func TestCartSurvivesRoundTrip(t *testing.T) {
	cart, db := newCartFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 2, VariationLabel: "Half", Quantity: 2, SpecialInstructions: "spicy"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// A fresh service over the same database sees the stored cart.
	reloaded := NewCartService(
		repository.NewCartRepository(db),
		repository.NewMenuItemRepository(db),
		NewBillingService(&config.BillingConfig{DeliveryFee: 50}),
	)
	view, err := reloaded.Get(customerID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 line after reload, got %d", len(view.Lines))
	}
	line := view.Lines[0]
	if line.VariationLabel != "Half" || line.Quantity != 2 || line.SpecialInstructions != "spicy" {
		t.Fatalf("line lost fields after reload: %+v", line)
	}
}

func TestCartCorruptStateResetsEmpty(t *testing.T) {
	cart, db := newCartFixture(t)
	customerID := uint(7)

	if err := db.Exec(
		"INSERT INTO cart_states (customer_id, lines, created_at, updated_at) VALUES (?, ?, ?, ?)",
		customerID, "{not json", "2026-01-01", "2026-01-01",
	).Error; err != nil {
		t.Fatalf("insert corrupt row failed: %v", err)
	}

	view, err := cart.Get(customerID)
	if err != nil {
		t.Fatalf("corrupt cart must not surface an error: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected reset empty cart, got %d lines", len(view.Lines))
	}

	// The cart is usable again after the reset.
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add after reset failed: %v", err)
	}
}
