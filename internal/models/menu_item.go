package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceMap stores the variation label to price mapping for multi-variation
// pricing, serialized as JSON.
type PriceMap map[string]decimal.Decimal

// Value implements driver.Valuer.
func (p PriceMap) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *PriceMap) Scan(value interface{}) error {
	if value == nil {
		*p = make(PriceMap)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, p)
}

// MenuItem is a purchasable catalog entry. PricingMode is a tagged variant:
// "single" uses PriceAmount, "multiple" uses the Variations map.
type MenuItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	PricingMode string         `gorm:"type:varchar(20);not null;default:'single'" json:"pricing_mode"`
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`
	Variations  PriceMap       `gorm:"type:json" json:"price_variations,omitempty"`
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	IsAvailable bool           `gorm:"default:true;index" json:"is_available"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menu_items"
}
