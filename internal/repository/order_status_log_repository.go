package repository

import (
	"github.com/seaside-kitchen/storefront/internal/models"

	"gorm.io/gorm"
)

// OrderStatusLogRepository is the status audit data access interface.
type OrderStatusLogRepository interface {
	Create(log *models.OrderStatusLog) error
	ListByOrder(orderID uint) ([]models.OrderStatusLog, error)
}

// GormOrderStatusLogRepository is the GORM implementation.
type GormOrderStatusLogRepository struct {
	db *gorm.DB
}

// NewOrderStatusLogRepository creates a status log repository.
func NewOrderStatusLogRepository(db *gorm.DB) *GormOrderStatusLogRepository {
	return &GormOrderStatusLogRepository{db: db}
}

// Create inserts a status log entry.
func (r *GormOrderStatusLogRepository) Create(log *models.OrderStatusLog) error {
	return r.db.Create(log).Error
}

// ListByOrder returns an order's transition history in applied order.
func (r *GormOrderStatusLogRepository) ListByOrder(orderID uint) ([]models.OrderStatusLog, error) {
	var logs []models.OrderStatusLog
	if err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
