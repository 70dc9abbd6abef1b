package public

import (
	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type addCartLineRequest struct {
	ItemID              uint   `json:"item_id" binding:"required"`
	VariationLabel      string `json:"variation_label"`
	Quantity            int    `json:"quantity" binding:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

type updateCartLineRequest struct {
	ItemID         uint   `json:"item_id" binding:"required"`
	VariationLabel string `json:"variation_label"`
	Quantity       int    `json:"quantity"`
}

type removeCartLineRequest struct {
	ItemID         uint   `json:"item_id" binding:"required"`
	VariationLabel string `json:"variation_label"`
}

// GetCart returns the customer's cart with derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	view, err := h.CartService.Get(customerID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to load cart")
		return
	}
	response.Success(c, view)
}

// AddCartLine adds an item to the cart, merging with an existing line for
// the same item and variation.
func (h *Handler) AddCartLine(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req addCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	view, err := h.CartService.AddLine(service.AddCartLineInput{
		CustomerID:          customerID,
		ItemID:              req.ItemID,
		VariationLabel:      req.VariationLabel,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to add to cart")
		return
	}
	response.Success(c, view)
}

// UpdateCartLine sets the quantity of a cart line. Zero removes the line.
func (h *Handler) UpdateCartLine(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req updateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	view, err := h.CartService.SetQuantity(customerID, req.ItemID, req.VariationLabel, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to update cart")
		return
	}
	response.Success(c, view)
}

// RemoveCartLine removes one line from the cart.
func (h *Handler) RemoveCartLine(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req removeCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	view, err := h.CartService.RemoveLine(customerID, req.ItemID, req.VariationLabel)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to update cart")
		return
	}
	response.Success(c, view)
}

// ClearCart empties the customer's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(customerID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to clear cart")
		return
	}
	response.SuccessWithMsg(c, "cart cleared", nil)
}
