package handlers

import (
	"net/http"

	"restaurant-api/services"

	"github.com/gin-gonic/gin"
)

type MenuItemHandler struct {
	menu *services.MenuItemService
}

func NewMenuItemHandler(menu *services.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{menu: menu}
}

// List returns the full menu
func (h *MenuItemHandler) List(c *gin.Context) {
	items, err := h.menu.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// Find returns one menu item
func (h *MenuItemHandler) Find(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.menu.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// FindWithOrders returns one menu item with the orders containing it
func (h *MenuItemHandler) FindWithOrders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.menu.FindWithOrders(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu item"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": detail})
}

// Add creates a menu item
func (h *MenuItemHandler) Add(c *gin.Context) {
	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.menu.Add(req), "Menu item created")
}

// Update overwrites a menu item's fields
func (h *MenuItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeResult(c, h.menu.Update(id, req), "Menu item updated")
}

// Delete removes a menu item; past order lines keep their snapshot prices
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	writeResult(c, h.menu.Delete(id), "Menu item deleted")
}
