package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups menu items for browsing.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	ImageURL  string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
