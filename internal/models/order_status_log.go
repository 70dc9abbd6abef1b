package models

import "time"

// OrderStatusLog records one applied status transition, written by the
// worker from status-changed queue tasks.
type OrderStatusLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	FromStatus string    `gorm:"type:varchar(32);not null" json:"from_status"`
	ToStatus   string    `gorm:"type:varchar(32);not null" json:"to_status"`
	ChangedBy  string    `gorm:"type:varchar(100)" json:"changed_by,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (OrderStatusLog) TableName() string {
	return "order_status_logs"
}
