package models

import "time"

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItemDetail is the item plus the orders it appears in.
type MenuItemDetail struct {
	MenuItemID  uint           `json:"menu_item_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	TotalOrders int            `json:"total_orders"`
	Orders      []OrderSummary `json:"orders"`
}
