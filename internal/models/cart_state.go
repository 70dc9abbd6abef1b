package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// CartLine is one distinct selection in a cart. UnitPrice is snapshotted at
// insertion time so later catalog price changes never alter an existing line.
type CartLine struct {
	ItemID              uint   `json:"item_id"`
	DisplayName         string `json:"display_name"`
	VariationLabel      string `json:"variation_label,omitempty"`
	UnitPrice           Money  `json:"unit_price"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
	ImageURL            string `json:"image_url,omitempty"`
}

// CartLines is the serialized line sequence, stored as a single JSON column.
type CartLines []CartLine

// Value implements driver.Valuer.
func (l CartLines) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(CartLines{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner. Malformed payloads surface the unmarshal
// error; the cart store treats that as corruption and resets to empty.
func (l *CartLines) Scan(value interface{}) error {
	if value == nil {
		*l = CartLines{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*l = CartLines{}
		return nil
	}
	if len(bytes) == 0 {
		*l = CartLines{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// CartState is the durable cart, one row per customer.
type CartState struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex" json:"customer_id"`
	Lines      CartLines `gorm:"type:json" json:"lines"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`
}

// TableName sets the table name.
func (CartState) TableName() string {
	return "cart_states"
}
