package constants

// Order status constants
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// OrderStatuses lists every order status in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Menu pricing mode constants
const (
	PricingModeSingle   = "single"
	PricingModeMultiple = "multiple"
)

// Queue constants
const (
	QueueDefault           = "default"
	TaskOrderStatusChanged = "order:status_changed"
)

// Cache constants
const (
	RedisPrefixDefault   = "sk"
	CacheKeyMenuList     = "menu:list"
	CacheKeyCategoryList = "category:list"
)

// Currency constants
const (
	SiteCurrencyDefault = "INR"
)
