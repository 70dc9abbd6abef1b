package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/provider"
	"github.com/seaside-kitchen/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles async tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
}

// handleOrderStatusChanged writes the audit row for an applied status
// transition. The transition itself was committed before the task was
// enqueued, so a missing order only logs.
func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 || payload.ToStatus == "" {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload",
			"order_id", payload.OrderID, "to_status", payload.ToStatus)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_changed_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Warnw("worker_order_status_changed_order_missing", "order_id", payload.OrderID)
		return nil
	}

	log := &models.OrderStatusLog{
		OrderID:    payload.OrderID,
		FromStatus: payload.FromStatus,
		ToStatus:   payload.ToStatus,
		ChangedBy:  payload.ChangedBy,
		CreatedAt:  time.Now(),
	}
	if err := c.OrderStatusLogRepo.Create(log); err != nil {
		logger.Warnw("worker_order_status_changed_log_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	logger.Infow("worker_order_status_changed_logged",
		"order_id", payload.OrderID, "order_no", order.OrderNo,
		"from_status", payload.FromStatus, "to_status", payload.ToStatus)
	return nil
}
