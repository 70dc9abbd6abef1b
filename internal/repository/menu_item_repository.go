package repository

import (
	"errors"

	"github.com/seaside-kitchen/storefront/internal/models"

	"gorm.io/gorm"
)

// MenuItemRepository is the menu item data access interface.
type MenuItemRepository interface {
	List(filter MenuItemListFilter) ([]models.MenuItem, int64, error)
	GetByID(id uint) (*models.MenuItem, error)
	GetByIDs(ids []uint) ([]models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id uint) error
	SetAvailability(id uint, available bool) error
	WithTx(tx *gorm.DB) *GormMenuItemRepository
}

// GormMenuItemRepository is the GORM implementation.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a menu item repository.
func NewMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormMenuItemRepository) WithTx(tx *gorm.DB) *GormMenuItemRepository {
	if tx == nil {
		return r
	}
	return &GormMenuItemRepository{db: tx}
}

// List returns menu items matching the filter, with the unpaged total.
func (r *GormMenuItemRepository) List(filter MenuItemListFilter) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem
	query := r.db.Model(&models.MenuItem{})

	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if err := query.Order("sort_order DESC, id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID fetches one menu item, nil when absent.
func (r *GormMenuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDs fetches menu items by ID set. Missing IDs are simply absent
// from the result.
func (r *GormMenuItemRepository) GetByIDs(ids []uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a menu item.
func (r *GormMenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update saves a menu item.
func (r *GormMenuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

// SetAvailability toggles the availability flag.
func (r *GormMenuItemRepository) SetAvailability(id uint, available bool) error {
	return r.db.Model(&models.MenuItem{}).Where("id = ?", id).Update("is_available", available).Error
}
