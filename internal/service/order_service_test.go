package service

import (
	"errors"
	"testing"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"

	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()

	cart, db := newCartFixture(t)
	models.DB = db

	cfg := &config.Config{
		Billing: config.BillingConfig{DeliveryFee: 50},
		Monitor: config.MonitorConfig{MaxOrders: 100},
	}
	orders := NewOrderService(
		cfg,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuItemRepository(db),
		repository.NewOrderStatusLogRepository(db),
		NewBillingService(&cfg.Billing),
		nil, // queue disabled, audit rows written synchronously
	)
	return orders, cart, db
}

func TestSubmitEmptyCart(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	_, err := orders.Submit(SubmitOrderInput{CustomerID: 7, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitMissingDeliveryInfo(t *testing.T) {
	orders, cart, _ := newOrderFixture(t)
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := orders.Submit(SubmitOrderInput{CustomerID: 7, Phone: "9876543210"}); !errors.Is(err, ErrMissingDeliveryInfo) {
		t.Fatalf("expected ErrMissingDeliveryInfo without address, got %v", err)
	}
	if _, err := orders.Submit(SubmitOrderInput{CustomerID: 7, DeliveryAddress: "12 Beach Rd"}); !errors.Is(err, ErrMissingDeliveryInfo) {
		t.Fatalf("expected ErrMissingDeliveryInfo without phone, got %v", err)
	}
}

func TestSubmitItemWentUnavailable(t *testing.T) {
	orders, cart, db := newOrderFixture(t)
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.MenuItem{}).Where("id = ?", 1).Update("is_available", false).Error; err != nil {
		t.Fatalf("disable item failed: %v", err)
	}

	_, err := orders.Submit(SubmitOrderInput{CustomerID: 7, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if !errors.Is(err, ErrItemsNoLongerAvailable) {
		t.Fatalf("expected ErrItemsNoLongerAvailable, got %v", err)
	}

	// Failed submission leaves the cart intact.
	view, err := cart.Get(7)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("cart should survive a failed submission, got %d lines", len(view.Lines))
	}
}

func TestSubmitCreatesOrderAndClearsCart(t *testing.T) {
	orders, cart, _ := newOrderFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 2, SpecialInstructions: "extra chutney"}); err != nil {
		t.Fatalf("add dosa failed: %v", err)
	}
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 2, VariationLabel: "Half", Quantity: 1}); err != nil {
		t.Fatalf("add biryani failed: %v", err)
	}

	order, err := orders.Submit(SubmitOrderInput{CustomerID: customerID, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("new order status = %s, want pending", order.Status)
	}
	if order.OrderNo == "" {
		t.Fatal("order number not assigned")
	}
	// 2x120 + 180 = 420 subtotal, +50 delivery
	if got := order.Subtotal.StringFixed(2); got != "420.00" {
		t.Fatalf("subtotal = %s, want 420.00", got)
	}
	if got := order.TotalAmount.StringFixed(2); got != "470.00" {
		t.Fatalf("total = %s, want 470.00", got)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.MenuItemID == 1 && item.SpecialInstructions != "extra chutney" {
			t.Fatalf("instructions not snapshotted: %+v", item)
		}
	}

	view, err := cart.Get(customerID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("cart should be empty after submission, got %d lines", len(view.Lines))
	}

	// Submission is recorded in the status history.
	logs, err := orders.StatusHistory(order.ID)
	if err != nil {
		t.Fatalf("status history failed: %v", err)
	}
	if len(logs) != 1 || logs[0].ToStatus != constants.OrderStatusPending {
		t.Fatalf("unexpected status history: %+v", logs)
	}
}

func TestSubmitChargesSnapshotPrice(t *testing.T) {
	orders, cart, db := newOrderFixture(t)
	customerID := uint(7)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: customerID, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.MenuItem{}).Where("id = ?", 1).Update("price_amount", "999.00").Error; err != nil {
		t.Fatalf("reprice item failed: %v", err)
	}

	order, err := orders.Submit(SubmitOrderInput{CustomerID: customerID, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if got := order.Subtotal.StringFixed(2); got != "120.00" {
		t.Fatalf("subtotal = %s, want snapshot 120.00", got)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	orders, cart, _ := newOrderFixture(t)
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.Submit(SubmitOrderInput{CustomerID: 7, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusPreparing, "staff"); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition skipping a step, got %v", err)
	}

	updated, err := orders.UpdateStatus(order.ID, constants.OrderStatusConfirmed, "staff")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status = %s, want confirmed", updated.Status)
	}

	for _, next := range []string{
		constants.OrderStatusPreparing,
		constants.OrderStatusOutForDelivery,
		constants.OrderStatusDelivered,
	} {
		if _, err := orders.UpdateStatus(order.ID, next, "staff"); err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
	}

	if _, err := orders.UpdateStatus(order.ID, constants.OrderStatusCancelled, "staff"); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition from delivered, got %v", err)
	}

	logs, err := orders.StatusHistory(order.ID)
	if err != nil {
		t.Fatalf("status history failed: %v", err)
	}
	// submit + 4 transitions
	if len(logs) != 5 {
		t.Fatalf("expected 5 history rows, got %d", len(logs))
	}
	if logs[len(logs)-1].ToStatus != constants.OrderStatusDelivered {
		t.Fatalf("last transition = %s, want delivered", logs[len(logs)-1].ToStatus)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	orders, _, _ := newOrderFixture(t)
	if _, err := orders.UpdateStatus(12345, constants.OrderStatusConfirmed, "staff"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestListActiveExcludesTerminalOrders(t *testing.T) {
	orders, cart, _ := newOrderFixture(t)

	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	first, err := orders.Submit(SubmitOrderInput{CustomerID: 7, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("submit first failed: %v", err)
	}
	if _, err := cart.AddLine(AddCartLineInput{CustomerID: 7, ItemID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	second, err := orders.Submit(SubmitOrderInput{CustomerID: 7, DeliveryAddress: "12 Beach Rd", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("submit second failed: %v", err)
	}

	if _, err := orders.UpdateStatus(second.ID, constants.OrderStatusCancelled, "staff"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	active, err := orders.ListActive()
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != first.ID {
		t.Fatalf("expected only the pending order in the live board, got %+v", active)
	}
}
