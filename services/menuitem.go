package services

import (
	"errors"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// MenuItemService handles menu item CRUD. Prices on past order lines are
// snapshots; editing or deleting a menu item never reprices old orders.
type MenuItemService struct {
	db *gorm.DB
}

func NewMenuItemService(db *gorm.DB) *MenuItemService {
	return &MenuItemService{db: db}
}

type MenuItemRequest struct {
	MenuItemID  uint    `json:"menu_item_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
}

// List returns all menu items.
func (s *MenuItemService) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Find returns one menu item, or nil when absent.
func (s *MenuItemService) Find(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindWithOrders returns a menu item along with every order containing it.
func (s *MenuItemService) FindWithOrders(id uint) (*models.MenuItemDetail, error) {
	var item models.MenuItem
	err := s.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orderIDs []uint
	err = s.db.Model(&models.OrderItem{}).
		Where("menu_item_id = ?", id).
		Distinct("order_id").
		Pluck("order_id", &orderIDs).Error
	if err != nil {
		return nil, err
	}

	detail := models.MenuItemDetail{
		MenuItemID:  item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		TotalOrders: len(orderIDs),
		Orders:      []models.OrderSummary{},
	}
	if len(orderIDs) == 0 {
		return &detail, nil
	}

	var orders []models.Order
	err = s.db.Preload("Items").Preload("Customer").Find(&orders, orderIDs).Error
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		detail.Orders = append(detail.Orders, models.OrderSummary{
			OrderID:         order.ID,
			OrderDate:       formatDate(order.OrderDate),
			CustomerName:    customerName(order.Customer),
			TotalOrderPrice: orderTotal(order.Items),
		})
	}
	return &detail, nil
}

// Add creates a menu item.
func (s *MenuItemService) Add(req MenuItemRequest) models.Result {
	if req.Price < 0 {
		return models.Invalid("price must not be negative")
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.Failed("could not add menu item: " + err.Error())
	}
	return models.Created(item.ID)
}

// Update overwrites a menu item's fields; a stale row is a conflict.
func (s *MenuItemService) Update(id uint, req MenuItemRequest) models.Result {
	if req.MenuItemID != 0 && req.MenuItemID != id {
		return models.Invalid("menu item ID mismatch")
	}
	if req.Price < 0 {
		return models.Invalid("price must not be negative")
	}

	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("menu item not found")
		}
		return models.Failed("could not load menu item: " + err.Error())
	}

	res := s.db.Model(&models.MenuItem{}).
		Where("id = ? AND updated_at = ?", item.ID, item.UpdatedAt).
		Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"price":       req.Price,
		})
	if res.Error != nil {
		return models.Failed("could not update menu item: " + res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return models.Conflict("menu item was modified by someone else, please retry")
	}
	return models.Updated()
}

// Delete removes a menu item. Existing order lines keep their snapshot
// prices; their menu reference may dangle and projections render it as
// "Unknown".
func (s *MenuItemService) Delete(id uint) models.Result {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("menu item not found")
		}
		return models.Failed("could not load menu item: " + err.Error())
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return models.Failed("could not delete menu item: " + err.Error())
	}
	return models.Deleted()
}
