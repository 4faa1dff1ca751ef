package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     *string   `json:"email" gorm:"uniqueIndex"` // optional, unique when present
	Phone     string    `json:"phone" gorm:"size:15;not null"`
	Orders    []Order   `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerSummary is the listing/detail projection: the customer plus the
// date and total of their most recent order. LastOrderDate is nil and
// LastOrderPrice zero when the customer has never ordered.
type CustomerSummary struct {
	CustomerID     uint    `json:"customer_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	LastOrderDate  *string `json:"last_order_date"`
	LastOrderPrice float64 `json:"last_order_price"`
}
