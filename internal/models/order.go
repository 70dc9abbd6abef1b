package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a submitted purchase, owned by this backend once created. Fee
// columns snapshot the billing policy in force at submission time.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	CustomerID      uint           `gorm:"index;not null" json:"customer_id"`
	Status          string         `gorm:"type:varchar(32);index;not null" json:"status"`
	DeliveryAddress string         `gorm:"type:text;not null" json:"delivery_address"`
	Phone           string         `gorm:"type:varchar(32);not null" json:"phone"`
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DeliveryFee     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_fee"`
	ServiceFee      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"service_fee"`
	Tax             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	CreatedAt       time.Time      `gorm:"index" json:"order_date"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
