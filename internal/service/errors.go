package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP responses with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")

	ErrItemNotFound       = errors.New("menu item not found")
	ErrItemNameRequired   = errors.New("menu item name required")
	ErrItemUnavailable    = errors.New("menu item not available")
	ErrInvalidVariation   = errors.New("invalid price variation")
	ErrPricingModeInvalid = errors.New("invalid pricing mode")
	ErrInvalidQuantity    = errors.New("invalid quantity")

	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name required")
	ErrCategoryNameTaken    = errors.New("category name already exists")
	ErrCategoryInUse        = errors.New("category has menu items")

	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidCartLine        = errors.New("invalid cart line")
	ErrMissingDeliveryInfo    = errors.New("delivery address and phone required")
	ErrItemsNoLongerAvailable = errors.New("some items are no longer available")

	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)
