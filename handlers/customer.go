package handlers

import (
	"net/http"

	"restaurant-api/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customers *services.CustomerService
	orders    *services.OrderService
}

func NewCustomerHandler(customers *services.CustomerService, orders *services.OrderService) *CustomerHandler {
	return &CustomerHandler{customers: customers, orders: orders}
}

// List returns all customers with their last-order summaries
func (h *CustomerHandler) List(c *gin.Context) {
	summaries, err := h.customers.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(summaries), "customers": summaries})
}

// Find returns one customer's summary
func (h *CustomerHandler) Find(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, err := h.customers.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": summary})
}

// ListOrders returns one customer's orders, newest first
func (h *CustomerHandler) ListOrders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, err := h.customers.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	orders, err := h.orders.ListByCustomer(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Add creates a customer
func (h *CustomerHandler) Add(c *gin.Context) {
	var req services.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.customers.Add(req), "Customer created")
}

// Update overwrites a customer's fields
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.customers.Update(id, req), "Customer updated")
}

// Delete removes a customer and cascades to their orders
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	writeResult(c, h.customers.Delete(id), "Customer deleted")
}
