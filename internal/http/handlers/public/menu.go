package public

import (
	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the full menu: active categories with their available
// items, each item carrying its pricing mode and display status.
func (h *Handler) GetMenu(c *gin.Context) {
	sections, err := h.MenuService.PublicMenu(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load menu", err)
		return
	}
	response.Success(c, gin.H{"sections": sections})
}

// GetCategories returns the active categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(true)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetMenuItem returns one menu item.
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.MenuService.GetItem(id)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "menu item not found"},
		}, response.CodeInternal, "failed to load menu item")
		return
	}
	response.Success(c, item)
}
