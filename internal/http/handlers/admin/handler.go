// Package admin holds the staff API handlers: catalog management, order
// oversight and the live order board.
package admin

import "github.com/seaside-kitchen/storefront/internal/provider"

// Handler is the staff handler entry point.
type Handler struct {
	*provider.Container
}

// New creates a staff handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
