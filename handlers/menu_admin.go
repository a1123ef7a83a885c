package handlers

import (
	"errors"
	"net/http"

	"kacip-storefront/catalog"
	"kacip-storefront/middleware"
	"kacip-storefront/models"
	"kacip-storefront/notify"

	"github.com/gin-gonic/gin"
)

// ── Menu Management ─────────────────────────────────────────────────────────

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Catalog.Create(item)
	if h.menuError(c, err) {
		return
	}
	middleware.Instance(c).Notices.Notify("Menu item added successfully", notify.Success)
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully", "item": created})
}

// UpdateMenuItem replaces a menu item; the id in the path wins over the body
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Catalog.Update(c.Param("id"), item)
	if h.menuError(c, err) {
		return
	}
	middleware.Instance(c).Notices.Notify("Menu item updated successfully", notify.Success)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully", "item": updated})
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if h.menuError(c, h.Catalog.Delete(c.Param("id"))) {
		return
	}
	middleware.Instance(c).Notices.Notify("Menu item deleted successfully", notify.Success)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// SetMenuItemAvailability marks an item in or out of stock
func (h *Handler) SetMenuItemAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Catalog.SetAvailability(c.Param("id"), *req.IsAvailable)
	if h.menuError(c, err) {
		return
	}
	middleware.Instance(c).Notices.Notify("Availability toggled successfully", notify.Success)
	c.JSON(http.StatusOK, gin.H{"message": "Availability toggled successfully", "item": item})
}

func (h *Handler) GetMenuStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.Catalog.Stats(), "cache": h.Catalog.CacheStats()})
}

// InvalidateMenuCache drops every memoized menu query
func (h *Handler) InvalidateMenuCache(c *gin.Context) {
	h.Catalog.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"message": "Menu cache cleared"})
}

// menuError writes the response for a catalog error and reports whether it did
func (h *Handler) menuError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	case errors.Is(err, catalog.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": "A menu item with this id already exists"})
	case errors.Is(err, catalog.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
	}
	return true
}
