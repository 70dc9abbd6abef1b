// Package public holds the storefront-facing API handlers: menu browsing,
// customer accounts, cart and order endpoints.
package public

import "github.com/seaside-kitchen/storefront/internal/provider"

// Handler is the storefront handler entry point.
type Handler struct {
	*provider.Container
}

// New creates a storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
