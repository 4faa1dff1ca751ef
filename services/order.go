package services

import (
	"errors"
	"fmt"
	"time"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// OrderService manages the order aggregate: an order header together with
// its owned lines, written as one consistency boundary. Every multi-step
// write runs inside a single transaction.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderItemRequest struct {
	OrderItemID uint    `json:"order_item_id"`
	MenuItemID  uint    `json:"menu_item_id"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	OrderDate  string             `json:"order_date" binding:"required,datetime=2006-01-02"`
	CustomerID *uint              `json:"customer_id"`
	Items      []OrderItemRequest `json:"items" binding:"dive"`
}

type UpdateOrderRequest struct {
	OrderID    uint               `json:"order_id"`
	OrderDate  string             `json:"order_date" binding:"required,datetime=2006-01-02"`
	CustomerID *uint              `json:"customer_id"`
	Items      []OrderItemRequest `json:"items" binding:"dive"`
}

// Create inserts an order header and its lines in one transaction. Each
// line snapshots the current menu price as its unit price. A missing
// customer or menu item reference aborts the whole operation; no partial
// order is left behind.
func (s *OrderService) Create(req CreateOrderRequest) models.Result {
	date, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		return models.Invalid("order_date must be in YYYY-MM-DD format")
	}

	var outcome models.Result
	var orderID uint

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.CustomerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *req.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					outcome = models.ReferenceNotFound(fmt.Sprintf("customer %d does not exist", *req.CustomerID))
					return errRollback
				}
				return err
			}
		}

		order := models.Order{OrderDate: date, CustomerID: req.CustomerID}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, reqItem := range req.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					outcome = models.ReferenceNotFound(fmt.Sprintf("menu item %d does not exist", reqItem.MenuItemID))
					return errRollback
				}
				return err
			}

			line := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Quantity:   reqItem.Quantity,
				UnitPrice:  menuItem.Price,
				TotalPrice: float64(reqItem.Quantity) * menuItem.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return outcome
		}
		return models.Failed("could not create order: " + err.Error())
	}

	return models.Created(orderID)
}

// Update reconciles an order's persisted lines against the desired set:
// lines matching an existing id are overwritten, lines without a match are
// inserted with a fresh price snapshot, and existing lines omitted from the
// desired set are deleted. The whole reconciliation is one transaction.
func (s *OrderService) Update(id uint, req UpdateOrderRequest) models.Result {
	if req.OrderID != 0 && req.OrderID != id {
		return models.Invalid("order ID mismatch")
	}
	date, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		return models.Invalid("order_date must be in YYYY-MM-DD format")
	}

	var outcome models.Result

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = models.NotFound("order not found")
				return errRollback
			}
			return err
		}

		if req.CustomerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *req.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					outcome = models.ReferenceNotFound(fmt.Sprintf("customer %d does not exist", *req.CustomerID))
					return errRollback
				}
				return err
			}
		}

		// Guarded header update: zero rows affected means another writer
		// touched the order between our read and this write.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND updated_at = ?", order.ID, order.UpdatedAt).
			Updates(map[string]interface{}{"order_date": date, "customer_id": req.CustomerID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			outcome = models.Conflict("order was modified by someone else, please retry")
			return errRollback
		}

		existing := make(map[uint]models.OrderItem, len(order.Items))
		for _, item := range order.Items {
			existing[item.ID] = item
		}

		desired := make(map[uint]bool, len(req.Items))
		for _, reqItem := range req.Items {
			line, matched := existing[reqItem.OrderItemID]
			if matched {
				desired[reqItem.OrderItemID] = true
				line.Quantity = reqItem.Quantity
				line.UnitPrice = reqItem.UnitPrice
				line.TotalPrice = float64(reqItem.Quantity) * reqItem.UnitPrice
				if err := tx.Save(&line).Error; err != nil {
					return err
				}
				continue
			}

			var menuItem models.MenuItem
			if err := tx.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					outcome = models.ReferenceNotFound(fmt.Sprintf("menu item %d does not exist", reqItem.MenuItemID))
					return errRollback
				}
				return err
			}
			newLine := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Quantity:   reqItem.Quantity,
				UnitPrice:  menuItem.Price,
				TotalPrice: float64(reqItem.Quantity) * menuItem.Price,
			}
			if err := tx.Create(&newLine).Error; err != nil {
				return err
			}
		}

		// Omission means removal: every persisted line absent from the
		// desired set is deleted.
		for _, item := range order.Items {
			if !desired[item.ID] {
				if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return outcome
		}
		return models.Failed("could not update order: " + err.Error())
	}

	return models.Updated()
}

// Delete removes an order and all of its lines atomically.
func (s *OrderService) Delete(id uint) models.Result {
	var outcome models.Result

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = models.NotFound("order not found")
				return errRollback
			}
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return outcome
		}
		return models.Failed("could not delete order: " + err.Error())
	}

	return models.Deleted()
}

// List returns every order with its customer name and derived total.
func (s *OrderService) List() ([]models.OrderSummary, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Preload("Customer").Find(&orders).Error; err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, models.OrderSummary{
			OrderID:         order.ID,
			OrderDate:       formatDate(order.OrderDate),
			CustomerName:    customerName(order.Customer),
			TotalOrderPrice: orderTotal(order.Items),
		})
	}
	return summaries, nil
}

// Find returns one order with full line detail, or nil when absent.
func (s *OrderService) Find(id uint) (*models.OrderSummary, error) {
	var order models.Order
	err := s.db.Preload("Items.MenuItem").Preload("Customer").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	summary := models.OrderSummary{
		OrderID:         order.ID,
		OrderDate:       formatDate(order.OrderDate),
		CustomerName:    customerName(order.Customer),
		TotalOrderPrice: orderTotal(order.Items),
		Items:           itemDetails(order.ID, order.Items),
	}
	if order.CustomerID != nil {
		summary.CustomerID = *order.CustomerID
	}
	return &summary, nil
}

// ListByCustomer returns one customer's orders, newest first.
func (s *OrderService) ListByCustomer(customerID uint) ([]models.OrderSummary, error) {
	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").
		Where("customer_id = ?", customerID).
		Order("order_date desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, models.OrderSummary{
			OrderID:         order.ID,
			OrderDate:       formatDate(order.OrderDate),
			CustomerID:      customerID,
			TotalOrderPrice: orderTotal(order.Items),
			Items:           itemDetails(order.ID, order.Items),
		})
	}
	return summaries, nil
}
