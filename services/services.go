package services

import (
	"errors"
	"time"

	"restaurant-api/models"
)

// dateLayout is the wire format for order dates.
const dateLayout = "2006-01-02"

// unknownName is shown when a customer or menu item reference is absent.
const unknownName = "Unknown"

// errRollback aborts a transaction whose outcome was already recorded as a
// Result; it never escapes the service layer.
var errRollback = errors.New("rollback")

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func customerName(c *models.Customer) string {
	if c == nil {
		return unknownName
	}
	return c.Name
}

func menuItemName(m *models.MenuItem) string {
	if m == nil {
		return unknownName
	}
	return m.Name
}

func orderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}

func itemDetails(orderID uint, items []models.OrderItem) []models.OrderItemDetail {
	details := make([]models.OrderItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, models.OrderItemDetail{
			OrderItemID:  item.ID,
			OrderID:      orderID,
			MenuItemID:   item.MenuItemID,
			MenuItemName: menuItemName(item.MenuItem),
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}
	return details
}
