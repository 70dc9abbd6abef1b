package repository

import "time"

// MenuItemListFilter narrows menu item list queries.
type MenuItemListFilter struct {
	Page          int
	PageSize      int
	CategoryID    uint
	Search        string
	OnlyAvailable bool
	WithCategory  bool
}

// OrderListFilter narrows order list queries.
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CustomerListFilter narrows customer list queries.
type CustomerListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}
