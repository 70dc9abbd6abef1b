package repository

import (
	"errors"

	"github.com/seaside-kitchen/storefront/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the durable cart data access interface. Each customer
// owns at most one cart row.
type CartRepository interface {
	GetByCustomer(customerID uint) (*models.CartState, error)
	Save(state *models.CartState) error
	ClearByCustomer(customerID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByCustomer fetches a customer's cart row, nil when absent.
func (r *GormCartRepository) GetByCustomer(customerID uint) (*models.CartState, error) {
	var state models.CartState
	if err := r.db.Where("customer_id = ?", customerID).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// Save upserts the cart row keyed by customer.
func (r *GormCartRepository) Save(state *models.CartState) error {
	if state == nil {
		return nil
	}
	var existing models.CartState
	err := r.db.Where("customer_id = ?", state.CustomerID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(state).Error
	}
	if err != nil {
		return err
	}
	state.ID = existing.ID
	state.CreatedAt = existing.CreatedAt
	return r.db.Save(state).Error
}

// ClearByCustomer deletes a customer's cart row.
func (r *GormCartRepository) ClearByCustomer(customerID uint) error {
	return r.db.Where("customer_id = ?", customerID).Delete(&models.CartState{}).Error
}
