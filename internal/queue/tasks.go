package queue

import (
	"encoding/json"

	"github.com/seaside-kitchen/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusChanged records an applied order status transition.
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// OrderStatusChangedPayload carries one applied transition.
type OrderStatusChangedPayload struct {
	OrderID    uint   `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  string `json:"changed_by,omitempty"`
}

// NewOrderStatusChangedTask builds the status-changed task.
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}
