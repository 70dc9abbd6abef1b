package public

import (
	"strconv"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type submitOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	Phone           string `json:"phone"`
}

// orderView decorates an order with its human-readable status label.
func orderView(order *models.Order) gin.H {
	return gin.H{
		"order":        order,
		"status_label": service.FormatStatus(order.Status),
	}
}

// SubmitOrder turns the customer's cart into an order.
func (h *Handler) SubmitOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.Submit(service.SubmitOrderInput{
		CustomerID:      customerID,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
	})
	if err != nil {
		respondWithMappedError(c, err, orderSubmitErrorRules, response.CodeInternal, "failed to submit order")
		return
	}
	requestLog(c).Infow("order_submitted",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_id", customerID,
		"total_amount", order.TotalAmount.String(),
	)
	response.SuccessWithMsg(c, "order placed", orderView(order))
}

// ListMyOrders returns the customer's orders, newest first.
func (h *Handler) ListMyOrders(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListForCustomer(repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		Status:     c.Query("status"),
	})
	if err != nil {
		respondWithMappedError(c, err, orderFetchErrorRules, response.CodeInternal, "failed to load orders")
		return
	}
	response.SuccessWithPage(c, orders, total, page, pageSize)
}

// GetMyOrder returns one of the customer's orders by id.
func (h *Handler) GetMyOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetForCustomer(id, customerID)
	if err != nil {
		respondWithMappedError(c, err, orderFetchErrorRules, response.CodeInternal, "failed to load order")
		return
	}
	response.Success(c, orderView(order))
}

// GetMyOrderByOrderNo returns one of the customer's orders by order number.
func (h *Handler) GetMyOrderByOrderNo(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	orderNo := c.Param("order_no")
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "order number required", nil)
		return
	}
	order, err := h.OrderService.GetByOrderNoForCustomer(orderNo, customerID)
	if err != nil {
		respondWithMappedError(c, err, orderFetchErrorRules, response.CodeInternal, "failed to load order")
		return
	}
	response.Success(c, orderView(order))
}
