package service

import (
	"strings"
	"time"

	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"
)

// AddCartLineInput describes one item selection to add to a cart.
type AddCartLineInput struct {
	CustomerID          uint
	ItemID              uint
	VariationLabel      string
	Quantity            int
	SpecialInstructions string
}

// CartView is the cart response shape: lines plus their freshly computed
// billing breakdown, never a cached one.
type CartView struct {
	Lines []models.CartLine `json:"lines"`
	BillingBreakdown
}

// CartService manages the durable per-customer cart.
type CartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuItemRepository
	billing  *BillingService
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuItemRepository, billing *BillingService) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		billing:  billing,
	}
}

// Get returns the customer's cart.
func (s *CartService) Get(customerID uint) (*CartView, error) {
	if customerID == 0 {
		return nil, ErrNotAuthenticated
	}
	lines, err := s.loadLines(customerID)
	if err != nil {
		return nil, err
	}
	return s.buildCartView(lines), nil
}

// AddLine adds an item selection. A line with the same item and variation
// already in the cart absorbs the quantity instead of duplicating; its
// instructions are replaced only when the new ones are non-empty. The
// unit price is snapshotted at insertion and later catalog changes never
// touch existing lines.
func (s *CartService) AddLine(input AddCartLineInput) (*CartView, error) {
	if input.CustomerID == 0 {
		return nil, ErrNotAuthenticated
	}
	if input.ItemID == 0 {
		return nil, ErrItemNotFound
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.menuRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	unitPrice, err := ResolveUnitPrice(item, input.VariationLabel)
	if err != nil {
		return nil, err
	}

	lines, err := s.loadLines(input.CustomerID)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(input.VariationLabel)
	instructions := strings.TrimSpace(input.SpecialInstructions)
	merged := false
	for i := range lines {
		if lines[i].ItemID == input.ItemID && lines[i].VariationLabel == label {
			lines[i].Quantity += input.Quantity
			if instructions != "" {
				lines[i].SpecialInstructions = instructions
			}
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ItemID:              item.ID,
			DisplayName:         item.Name,
			VariationLabel:      label,
			UnitPrice:           models.NewMoneyFromDecimal(unitPrice),
			Quantity:            input.Quantity,
			SpecialInstructions: instructions,
			ImageURL:            item.ImageURL,
		})
	}

	if err := s.saveLines(input.CustomerID, lines); err != nil {
		return nil, err
	}
	return s.buildCartView(lines), nil
}

// SetQuantity replaces a line's quantity. Zero or below removes the line.
// An absent line is a no-op.
func (s *CartService) SetQuantity(customerID, itemID uint, variationLabel string, quantity int) (*CartView, error) {
	if customerID == 0 {
		return nil, ErrNotAuthenticated
	}
	lines, err := s.loadLines(customerID)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(variationLabel)
	changed := false
	out := lines[:0]
	for _, line := range lines {
		if line.ItemID == itemID && line.VariationLabel == label {
			changed = true
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
		}
		out = append(out, line)
	}
	if changed {
		if err := s.saveLines(customerID, out); err != nil {
			return nil, err
		}
	}
	return s.buildCartView(out), nil
}

// RemoveLine deletes one line from the cart.
func (s *CartService) RemoveLine(customerID, itemID uint, variationLabel string) (*CartView, error) {
	return s.SetQuantity(customerID, itemID, variationLabel, 0)
}

// Clear empties the customer's cart.
func (s *CartService) Clear(customerID uint) error {
	if customerID == 0 {
		return ErrNotAuthenticated
	}
	return s.cartRepo.ClearByCustomer(customerID)
}

// loadLines reads the stored cart. A row that fails to decode is treated
// as corruption: the cart resets to empty and the customer never sees the
// failure.
func (s *CartService) loadLines(customerID uint) (models.CartLines, error) {
	state, err := s.cartRepo.GetByCustomer(customerID)
	if err != nil {
		logger.Warnw("cart_state_corrupt_reset", "customer_id", customerID, "error", err)
		if clearErr := s.cartRepo.ClearByCustomer(customerID); clearErr != nil {
			return nil, clearErr
		}
		return models.CartLines{}, nil
	}
	if state == nil {
		return models.CartLines{}, nil
	}
	return state.Lines, nil
}

func (s *CartService) saveLines(customerID uint, lines models.CartLines) error {
	now := time.Now()
	return s.cartRepo.Save(&models.CartState{
		CustomerID: customerID,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *CartService) buildCartView(lines models.CartLines) *CartView {
	view := &CartView{
		Lines:            lines,
		BillingBreakdown: s.billing.Compute(lines),
	}
	if view.Lines == nil {
		view.Lines = models.CartLines{}
	}
	return view
}
