package services

import (
	"errors"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// CustomerService handles customer CRUD and the last-order summary
// projection. Deleting a customer cascades to their orders and lines.
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

type CustomerRequest struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone" binding:"required,max=15"`
}

// lastOrder picks the most recent order; ties on the date go to the higher
// order id so the result is deterministic.
func lastOrder(orders []models.Order) *models.Order {
	var last *models.Order
	for i := range orders {
		o := &orders[i]
		if last == nil || o.OrderDate.After(last.OrderDate) ||
			(o.OrderDate.Equal(last.OrderDate) && o.ID > last.ID) {
			last = o
		}
	}
	return last
}

func summarize(customer models.Customer, withContact bool) models.CustomerSummary {
	summary := models.CustomerSummary{
		CustomerID: customer.ID,
		Name:       customer.Name,
	}
	if withContact {
		if customer.Email != nil {
			summary.Email = *customer.Email
		}
		summary.Phone = customer.Phone
	}
	if last := lastOrder(customer.Orders); last != nil {
		date := formatDate(last.OrderDate)
		summary.LastOrderDate = &date
		summary.LastOrderPrice = orderTotal(last.Items)
	}
	return summary
}

// List returns every customer with their last-order date and total.
func (s *CustomerService) List() ([]models.CustomerSummary, error) {
	var customers []models.Customer
	if err := s.db.Preload("Orders.Items").Find(&customers).Error; err != nil {
		return nil, err
	}

	summaries := make([]models.CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		summaries = append(summaries, summarize(customer, false))
	}
	return summaries, nil
}

// Find returns one customer's summary with contact details, or nil when
// absent.
func (s *CustomerService) Find(id uint) (*models.CustomerSummary, error) {
	var customer models.Customer
	err := s.db.Preload("Orders.Items").First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	summary := summarize(customer, true)
	return &summary, nil
}

// Add creates a customer, rejecting a duplicate email.
func (s *CustomerService) Add(req CustomerRequest) models.Result {
	if req.Email != "" {
		var existing models.Customer
		if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			return models.Duplicate("customer with this email already exists")
		}
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone}
	if req.Email != "" {
		customer.Email = &req.Email
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return models.Failed("could not add customer: " + err.Error())
	}
	return models.Created(customer.ID)
}

// Update overwrites a customer's name and contact fields. A stale row
// (changed since our read) is reported as a retryable conflict.
func (s *CustomerService) Update(id uint, req CustomerRequest) models.Result {
	if req.CustomerID != 0 && req.CustomerID != id {
		return models.Invalid("customer ID mismatch")
	}

	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("customer not found")
		}
		return models.Failed("could not load customer: " + err.Error())
	}

	if req.Email != "" {
		var existing models.Customer
		err := s.db.Where("email = ? AND id <> ?", req.Email, id).First(&existing).Error
		if err == nil {
			return models.Duplicate("customer with this email already exists")
		}
	}

	var email *string
	if req.Email != "" {
		email = &req.Email
	}
	res := s.db.Model(&models.Customer{}).
		Where("id = ? AND updated_at = ?", customer.ID, customer.UpdatedAt).
		Updates(map[string]interface{}{"name": req.Name, "email": email, "phone": req.Phone})
	if res.Error != nil {
		return models.Failed("could not update customer: " + res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return models.Conflict("customer was modified by someone else, please retry")
	}
	return models.Updated()
}

// Delete removes a customer, their orders, and those orders' lines in one
// transaction.
func (s *CustomerService) Delete(id uint) models.Result {
	var outcome models.Result

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Preload("Orders").First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = models.NotFound("customer not found")
				return errRollback
			}
			return err
		}

		for _, order := range customer.Orders {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return outcome
		}
		return models.Failed("could not delete customer: " + err.Error())
	}

	return models.Deleted()
}
