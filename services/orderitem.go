package services

import (
	"errors"
	"fmt"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// OrderItemService manages individual order lines outside the aggregate
// write path: single-line reads, create, update, delete, and the
// per-menu-item and per-customer line listings.
type OrderItemService struct {
	db *gorm.DB
}

func NewOrderItemService(db *gorm.DB) *OrderItemService {
	return &OrderItemService{db: db}
}

type CreateOrderItemRequest struct {
	OrderID    uint `json:"order_id" binding:"required"`
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type UpdateOrderItemRequest struct {
	OrderItemID uint    `json:"order_item_id"`
	MenuItemID  uint    `json:"menu_item_id"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price"`
}

// List returns every order line with its menu item name resolved.
func (s *OrderItemService) List() ([]models.OrderItemDetail, error) {
	var items []models.OrderItem
	if err := s.db.Preload("MenuItem").Find(&items).Error; err != nil {
		return nil, err
	}

	details := make([]models.OrderItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, models.OrderItemDetail{
			OrderItemID:  item.ID,
			OrderID:      item.OrderID,
			MenuItemID:   item.MenuItemID,
			MenuItemName: menuItemName(item.MenuItem),
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}
	return details, nil
}

// Find returns one order line, or nil when absent.
func (s *OrderItemService) Find(id uint) (*models.OrderItemDetail, error) {
	var item models.OrderItem
	err := s.db.Preload("MenuItem").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	detail := models.OrderItemDetail{
		OrderItemID:  item.ID,
		OrderID:      item.OrderID,
		MenuItemID:   item.MenuItemID,
		MenuItemName: menuItemName(item.MenuItem),
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   item.TotalPrice,
	}
	return &detail, nil
}

// ListByOrder returns the lines of one order.
func (s *OrderItemService) ListByOrder(orderID uint) ([]models.OrderItemDetail, error) {
	var items []models.OrderItem
	err := s.db.Preload("MenuItem").Where("order_id = ?", orderID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return itemDetails(orderID, items), nil
}

// ListByMenuItem returns every line referencing one menu item.
func (s *OrderItemService) ListByMenuItem(menuItemID uint) ([]models.OrderItemDetail, error) {
	var items []models.OrderItem
	err := s.db.Preload("MenuItem").Where("menu_item_id = ?", menuItemID).Find(&items).Error
	if err != nil {
		return nil, err
	}

	details := make([]models.OrderItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, models.OrderItemDetail{
			OrderItemID:  item.ID,
			OrderID:      item.OrderID,
			MenuItemID:   item.MenuItemID,
			MenuItemName: menuItemName(item.MenuItem),
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}
	return details, nil
}

// ListByCustomer returns every line across one customer's orders, with the
// customer and menu item names resolved.
func (s *OrderItemService) ListByCustomer(customerID uint) ([]models.CustomerOrderItem, error) {
	var customer models.Customer
	err := s.db.First(&customer, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.OrderItem
	err = s.db.Preload("MenuItem").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.customer_id = ?", customerID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	rows := make([]models.CustomerOrderItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.CustomerOrderItem{
			CustomerName: customer.Name,
			MenuItemName: menuItemName(item.MenuItem),
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		})
	}
	return rows, nil
}

// Add creates a single line on an existing order, snapshotting the current
// menu price as its unit price.
func (s *OrderItemService) Add(req CreateOrderItemRequest) models.Result {
	var outcome models.Result
	var lineID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = models.ReferenceNotFound(fmt.Sprintf("order %d does not exist", req.OrderID))
				return errRollback
			}
			return err
		}

		var menuItem models.MenuItem
		if err := tx.First(&menuItem, req.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = models.ReferenceNotFound(fmt.Sprintf("menu item %d does not exist", req.MenuItemID))
				return errRollback
			}
			return err
		}

		line := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   req.Quantity,
			UnitPrice:  menuItem.Price,
			TotalPrice: float64(req.Quantity) * menuItem.Price,
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}
		lineID = line.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return outcome
		}
		return models.Failed("could not add order item: " + err.Error())
	}

	return models.Created(lineID)
}

// Update overwrites one line's quantity, unit price, and menu reference,
// keeping total = quantity × unit price. The line stays on its order.
func (s *OrderItemService) Update(id uint, req UpdateOrderItemRequest) models.Result {
	if req.OrderItemID != 0 && req.OrderItemID != id {
		return models.Invalid("order item ID mismatch")
	}

	var item models.OrderItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("order item not found")
		}
		return models.Failed("could not load order item: " + err.Error())
	}

	if req.MenuItemID != 0 && req.MenuItemID != item.MenuItemID {
		var menuItem models.MenuItem
		if err := s.db.First(&menuItem, req.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ReferenceNotFound(fmt.Sprintf("menu item %d does not exist", req.MenuItemID))
			}
			return models.Failed("could not load menu item: " + err.Error())
		}
		item.MenuItemID = menuItem.ID
	}

	item.Quantity = req.Quantity
	item.UnitPrice = req.UnitPrice
	item.TotalPrice = float64(req.Quantity) * req.UnitPrice
	if err := s.db.Save(&item).Error; err != nil {
		return models.Failed("could not update order item: " + err.Error())
	}
	return models.Updated()
}

// Delete removes a single order line.
func (s *OrderItemService) Delete(id uint) models.Result {
	var item models.OrderItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("order item not found")
		}
		return models.Failed("could not load order item: " + err.Error())
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return models.Failed("could not delete order item: " + err.Error())
	}
	return models.Deleted()
}
