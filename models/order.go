package models

import "time"

type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderDate  time.Time   `json:"order_date" gorm:"not null"`
	CustomerID *uint       `json:"customer_id"` // nil for guest orders
	Customer   *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	UnitPrice  float64   `json:"unit_price" gorm:"not null"` // snapshot of the menu price at creation
	TotalPrice float64   `json:"total_price" gorm:"not null"`
}

// OrderSummary is the read projection for an order. TotalOrderPrice is
// always recomputed from the persisted lines, never stored on the order.
type OrderSummary struct {
	OrderID         uint              `json:"order_id"`
	OrderDate       string            `json:"order_date"`
	CustomerID      uint              `json:"customer_id,omitempty"`
	CustomerName    string            `json:"customer_name"`
	TotalOrderPrice float64           `json:"total_order_price"`
	Items           []OrderItemDetail `json:"items,omitempty"`
}

// CustomerOrderItem is one line as seen from a customer's order history.
type CustomerOrderItem struct {
	CustomerName string  `json:"customer_name"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
}

// OrderItemDetail is one line with its menu item name resolved.
type OrderItemDetail struct {
	OrderItemID  uint    `json:"order_item_id"`
	OrderID      uint    `json:"order_id"`
	MenuItemID   uint    `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}
