package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/queue"
	"github.com/seaside-kitchen/storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubmitOrderInput describes one order submission.
type SubmitOrderInput struct {
	CustomerID      uint
	DeliveryAddress string
	Phone           string
}

// OrderService turns carts into orders and drives the order lifecycle.
type OrderService struct {
	cfg           *config.Config
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	menuRepo      repository.MenuItemRepository
	statusLogRepo repository.OrderStatusLogRepository
	billing       *BillingService
	queueClient   *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	menuRepo repository.MenuItemRepository,
	statusLogRepo repository.OrderStatusLogRepository,
	billing *BillingService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		cfg:           cfg,
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		menuRepo:      menuRepo,
		statusLogRepo: statusLogRepo,
		billing:       billing,
		queueClient:   queueClient,
	}
}

// Submit converts the customer's cart into a pending order. The cart is
// cleared in the same transaction that creates the order, so a failed
// submission leaves the cart intact.
func (s *OrderService) Submit(input SubmitOrderInput) (*models.Order, error) {
	if input.CustomerID == 0 {
		return nil, ErrNotAuthenticated
	}
	address := strings.TrimSpace(input.DeliveryAddress)
	phone := strings.TrimSpace(input.Phone)
	if address == "" || phone == "" {
		return nil, ErrMissingDeliveryInfo
	}

	state, err := s.cartRepo.GetByCustomer(input.CustomerID)
	if err != nil {
		logger.Warnw("order_submit_cart_corrupt_reset", "customer_id", input.CustomerID, "error", err)
		_ = s.cartRepo.ClearByCustomer(input.CustomerID)
		return nil, ErrEmptyCart
	}
	if state == nil || len(state.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	lines := state.Lines

	itemIDs := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.ItemID == 0 || line.Quantity < 1 {
			return nil, ErrInvalidCartLine
		}
		itemIDs = append(itemIDs, line.ItemID)
	}

	// Availability is rechecked against the live catalog; the charged
	// price stays the snapshot taken when the line entered the cart.
	items, err := s.menuRepo.GetByIDs(itemIDs)
	if err != nil {
		return nil, err
	}
	itemsByID := make(map[uint]*models.MenuItem, len(items))
	for i := range items {
		itemsByID[items[i].ID] = &items[i]
	}
	for _, line := range lines {
		item := itemsByID[line.ItemID]
		if item == nil || !item.IsAvailable {
			return nil, ErrItemsNoLongerAvailable
		}
		if _, err := ResolveUnitPrice(item, line.VariationLabel); err != nil {
			return nil, ErrItemsNoLongerAvailable
		}
	}

	orderItems := make([]models.OrderItem, 0, len(lines))
	now := time.Now()
	for _, line := range lines {
		lineTotal := line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID:          line.ItemID,
			DisplayName:         line.DisplayName,
			VariationLabel:      line.VariationLabel,
			UnitPrice:           line.UnitPrice,
			Quantity:            line.Quantity,
			TotalPrice:          models.NewMoneyFromDecimal(lineTotal),
			SpecialInstructions: line.SpecialInstructions,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}

	breakdown := s.billing.Compute(lines)
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		CustomerID:      input.CustomerID,
		Status:          constants.OrderStatusPending,
		DeliveryAddress: address,
		Phone:           phone,
		Subtotal:        breakdown.Subtotal,
		DeliveryFee:     breakdown.DeliveryFee,
		ServiceFee:      breakdown.ServiceFee,
		Tax:             breakdown.Tax,
		TotalAmount:     breakdown.TotalAmount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByCustomer(input.CustomerID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = orderItems

	s.recordTransition(order.ID, "", constants.OrderStatusPending, "customer")
	return order, nil
}

// UpdateStatus applies one lifecycle transition. The update is guarded on
// the expected current status; losing the race surfaces as a conflict
// rather than a silent overwrite.
func (s *OrderService) UpdateStatus(orderID uint, toStatus, changedBy string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !IsValidStatus(toStatus) || !CanTransition(order.Status, toStatus) {
		return nil, ErrIllegalTransition
	}

	rows, err := s.orderRepo.UpdateStatusFrom(order.ID, order.Status, toStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrStatusConflict
	}

	s.recordTransition(order.ID, order.Status, toStatus, changedBy)
	order.Status = toStatus
	return order, nil
}

// GetForCustomer fetches a customer's own order.
func (s *OrderService) GetForCustomer(orderID, customerID uint) (*models.Order, error) {
	if customerID == 0 {
		return nil, ErrNotAuthenticated
	}
	order, err := s.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNoForCustomer fetches a customer's own order by number.
func (s *OrderService) GetByOrderNoForCustomer(orderNo string, customerID uint) (*models.Order, error) {
	if customerID == 0 {
		return nil, ErrNotAuthenticated
	}
	order, err := s.orderRepo.GetByOrderNoAndCustomer(strings.TrimSpace(orderNo), customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForCustomer returns a customer's order history.
func (s *OrderService) ListForCustomer(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.CustomerID == 0 {
		return nil, 0, ErrNotAuthenticated
	}
	return s.orderRepo.ListByCustomer(filter)
}

// ListAdmin returns orders for the staff view.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdmin fetches any order for the staff view.
func (s *OrderService) GetAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListActive returns orders still in flight, for the live board.
func (s *OrderService) ListActive() ([]models.Order, error) {
	limit := 0
	if s.cfg != nil {
		limit = s.cfg.Monitor.MaxOrders
	}
	return s.orderRepo.ListActive(limit)
}

// StatusHistory returns an order's applied transitions.
func (s *OrderService) StatusHistory(orderID uint) ([]models.OrderStatusLog, error) {
	if s.statusLogRepo == nil {
		return nil, nil
	}
	return s.statusLogRepo.ListByOrder(orderID)
}

// recordTransition pushes the audit entry through the queue, falling back
// to a synchronous write when the queue is disabled. The transition itself
// is already committed; audit failure only logs.
func (s *OrderService) recordTransition(orderID uint, fromStatus, toStatus, changedBy string) {
	payload := queue.OrderStatusChangedPayload{
		OrderID:    orderID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ChangedBy:  changedBy,
	}
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderStatusChanged(payload); err != nil {
			logger.Warnw("order_status_enqueue_failed", "order_id", orderID, "to_status", toStatus, "error", err)
		}
		return
	}
	if s.statusLogRepo == nil {
		return
	}
	log := &models.OrderStatusLog{
		OrderID:    orderID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ChangedBy:  changedBy,
		CreatedAt:  time.Now(),
	}
	if err := s.statusLogRepo.Create(log); err != nil {
		logger.Warnw("order_status_log_write_failed", "order_id", orderID, "to_status", toStatus, "error", err)
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("SK%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
