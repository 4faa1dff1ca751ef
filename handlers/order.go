package handlers

import (
	"net/http"

	"restaurant-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders *services.OrderService
	items  *services.OrderItemService
}

func NewOrderHandler(orders *services.OrderService, items *services.OrderItemService) *OrderHandler {
	return &OrderHandler{orders: orders, items: items}
}

// List returns all orders with customer names and derived totals
func (h *OrderHandler) List(c *gin.Context) {
	summaries, err := h.orders.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(summaries), "orders": summaries})
}

// Find returns one order with full line detail
func (h *OrderHandler) Find(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, err := h.orders.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": summary})
}

// Create places a new order with its lines
func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.orders.Create(req), "Order created")
}

// Update reconciles an order's lines against the supplied set
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.orders.Update(id, req), "Order updated")
}

// Delete removes an order and all of its lines
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	writeResult(c, h.orders.Delete(id), "Order deleted")
}

// ListItems returns the lines of one order
func (h *OrderHandler) ListItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, err := h.orders.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	details, err := h.items.ListByOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list order items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(details), "items": details})
}
