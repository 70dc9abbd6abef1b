package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/repository"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func respondOrderError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(c, response.CodeNotFound, "order not found", nil)
	case errors.Is(err, service.ErrIllegalTransition):
		respondError(c, response.CodeBadRequest, "status transition not allowed", nil)
	case errors.Is(err, service.ErrStatusConflict):
		respondError(c, response.CodeConflict, "order status changed concurrently, reload and retry", nil)
	default:
		respondError(c, response.CodeInternal, fallbackMsg, err)
	}
}

// ListOrders returns orders for the staff view with optional filters.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
	}
	if raw := c.Query("customer_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid customer_id", nil)
			return
		}
		filter.CustomerID = uint(parsed)
	}
	if raw := c.Query("created_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid created_from, expected RFC3339", nil)
			return
		}
		filter.CreatedFrom = &t
	}
	if raw := c.Query("created_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid created_to, expected RFC3339", nil)
			return
		}
		filter.CreatedTo = &t
	}

	orders, total, err := h.OrderService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}
	response.SuccessWithPage(c, orders, total, page, pageSize)
}

// GetOrder returns one order with its items and customer.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetAdmin(id)
	if err != nil {
		respondOrderError(c, err, "failed to load order")
		return
	}
	response.Success(c, gin.H{
		"order":         order,
		"status_label":  service.FormatStatus(order.Status),
		"next_statuses": service.NextStatuses(order.Status),
	})
}

// UpdateOrderStatus advances an order to an adjacent lifecycle step or
// cancels it.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.UpdateStatus(id, req.Status, "admin")
	if err != nil {
		respondOrderError(c, err, "failed to update order status")
		return
	}
	requestLog(c).Infow("order_status_updated",
		"order_id", order.ID,
		"status", order.Status,
		"admin_id", adminID,
	)
	response.SuccessWithMsg(c, "order status updated", gin.H{
		"order":         order,
		"status_label":  service.FormatStatus(order.Status),
		"next_statuses": service.NextStatuses(order.Status),
	})
}

// GetOrderStatusHistory returns the applied transitions of an order.
func (h *Handler) GetOrderStatusHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if _, err := h.OrderService.GetAdmin(id); err != nil {
		respondOrderError(c, err, "failed to load order")
		return
	}
	history, err := h.OrderService.StatusHistory(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load status history", err)
		return
	}
	response.Success(c, gin.H{"history": history})
}

// LiveOrders returns the most recent snapshot of active orders taken by the
// background monitor, without touching the database.
func (h *Handler) LiveOrders(c *gin.Context) {
	if h.OrderMonitor == nil {
		respondError(c, response.CodeInternal, "order monitor not running", nil)
		return
	}
	snapshot := h.OrderMonitor.Snapshot()
	response.Success(c, snapshot)
}
