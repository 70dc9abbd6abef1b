package admin

import (
	"errors"
	"strconv"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type saveMenuItemRequest struct {
	CategoryID  uint            `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	PricingMode string          `json:"pricing_mode" binding:"required"`
	PriceAmount models.Money    `json:"price_amount"`
	Variations  models.PriceMap `json:"price_variations"`
	ImageURL    string          `json:"image_url"`
	IsAvailable *bool           `json:"is_available"`
	SortOrder   int             `json:"sort_order"`
}

type setAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (r *saveMenuItemRequest) toInput() service.SaveMenuItemInput {
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}
	return service.SaveMenuItemInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		PricingMode: r.PricingMode,
		PriceAmount: r.PriceAmount,
		Variations:  r.Variations,
		ImageURL:    r.ImageURL,
		IsAvailable: isAvailable,
		SortOrder:   r.SortOrder,
	}
}

func respondMenuItemError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		respondError(c, response.CodeNotFound, "menu item not found", nil)
	case errors.Is(err, service.ErrItemNameRequired):
		respondError(c, response.CodeBadRequest, "item name is required", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeBadRequest, "category does not exist", nil)
	case errors.Is(err, service.ErrPricingModeInvalid):
		respondError(c, response.CodeBadRequest, "invalid pricing configuration", nil)
	case errors.Is(err, service.ErrInvalidVariation):
		respondError(c, response.CodeBadRequest, "invalid price variations", nil)
	default:
		respondError(c, response.CodeInternal, fallbackMsg, err)
	}
}

// ListMenuItems returns the catalog with optional filters.
func (h *Handler) ListMenuItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid category_id", nil)
			return
		}
		categoryID = uint(parsed)
	}

	items, total, err := h.MenuService.List(repository.MenuItemListFilter{
		Page:          page,
		PageSize:      pageSize,
		CategoryID:    categoryID,
		Search:        c.Query("search"),
		OnlyAvailable: c.Query("only_available") == "true",
		WithCategory:  true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load menu items", err)
		return
	}
	response.SuccessWithPage(c, items, total, page, pageSize)
}

// GetMenuItem returns one catalog item.
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, err := h.MenuService.GetItem(id)
	if err != nil {
		respondMenuItemError(c, err, "failed to load menu item")
		return
	}
	response.Success(c, item)
}

// CreateMenuItem adds a catalog item.
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req saveMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	item, err := h.MenuService.CreateItem(c.Request.Context(), req.toInput())
	if err != nil {
		respondMenuItemError(c, err, "failed to create menu item")
		return
	}
	response.SuccessWithMsg(c, "menu item created", item)
}

// UpdateMenuItem edits a catalog item.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req saveMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	item, err := h.MenuService.UpdateItem(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondMenuItemError(c, err, "failed to update menu item")
		return
	}
	response.SuccessWithMsg(c, "menu item updated", item)
}

// DeleteMenuItem removes a catalog item.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.MenuService.DeleteItem(c.Request.Context(), id); err != nil {
		respondMenuItemError(c, err, "failed to delete menu item")
		return
	}
	response.SuccessWithMsg(c, "menu item deleted", nil)
}

// SetMenuItemAvailability flips an item on or off the menu without touching
// the rest of its data.
func (h *Handler) SetMenuItemAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.MenuService.SetAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		respondMenuItemError(c, err, "failed to update availability")
		return
	}
	response.SuccessWithMsg(c, "availability updated", nil)
}
