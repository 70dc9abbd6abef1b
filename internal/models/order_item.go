package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a snapshot of one cart line at submission time.
type OrderItem struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	OrderID             uint           `gorm:"index;not null" json:"order_id"`
	MenuItemID          uint           `gorm:"index;not null" json:"menu_item_id"`
	DisplayName         string         `gorm:"type:varchar(200);not null" json:"display_name"`
	VariationLabel      string         `gorm:"type:varchar(100)" json:"variation_label,omitempty"`
	UnitPrice           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity            int            `gorm:"not null" json:"quantity"`
	TotalPrice          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	SpecialInstructions string         `gorm:"type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
