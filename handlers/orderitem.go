package handlers

import (
	"net/http"

	"restaurant-api/services"

	"github.com/gin-gonic/gin"
)

type OrderItemHandler struct {
	items *services.OrderItemService
}

func NewOrderItemHandler(items *services.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{items: items}
}

// List returns every order line with menu item names resolved
func (h *OrderItemHandler) List(c *gin.Context) {
	details, err := h.items.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list order items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(details), "order_items": details})
}

// Find returns a single order line
func (h *OrderItemHandler) Find(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.items.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order item"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_item": detail})
}

// ListByMenuItem returns every line referencing one menu item
func (h *OrderItemHandler) ListByMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	details, err := h.items.ListByMenuItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list order items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(details), "order_items": details})
}

// ListByCustomer returns every line across one customer's orders
func (h *OrderItemHandler) ListByCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rows, err := h.items.ListByCustomer(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list order items"})
		return
	}
	if rows == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "order_items": rows})
}

// Add creates a single line on an existing order
func (h *OrderItemHandler) Add(c *gin.Context) {
	var req services.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.items.Add(req), "Order item created")
}

// Update overwrites a single line's quantity and pricing
func (h *OrderItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.items.Update(id, req), "Order item updated")
}

// Delete removes a single order line
func (h *OrderItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	writeResult(c, h.items.Delete(id), "Order item deleted")
}
