package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a storefront account.
type Customer struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`
	Email        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`
	Phone        string         `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Address      string         `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Customer) TableName() string {
	return "customers"
}
