package handlers

import (
	"net/http"
	"strconv"

	"kacip-storefront/models"
	"kacip-storefront/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Menu ────────────────────────────────────────────────────────────────────

// ListMenu returns the menu (public). Filters: category, popular, new, q.
func (h *Handler) ListMenu(c *gin.Context) {
	var items []models.MenuItem
	switch {
	case c.Query("q") != "":
		items = h.Catalog.Search(c.Query("q"))
	case c.Query("category") != "":
		category := models.Category(c.Query("category"))
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category", "categories": models.Categories})
			return
		}
		items = h.Catalog.GetByCategory(category)
	case c.Query("popular") == "true":
		items = h.Catalog.GetPopular()
	case c.Query("new") == "true":
		items = h.Catalog.GetNew()
	default:
		items = h.Catalog.All()
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetMenuItem returns a single menu item
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, ok := h.Catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ListCategories returns the menu categories in display order
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

// ── Stores ──────────────────────────────────────────────────────────────────

// ListStores returns store locations. Filters: city, or lat+lng with optional radius_km.
func (h *Handler) ListStores(c *gin.Context) {
	if city := c.Query("city"); city != "" {
		stores := h.Stores.ByCity(city)
		c.JSON(http.StatusOK, gin.H{"count": len(stores), "stores": stores})
		return
	}

	if c.Query("lat") != "" || c.Query("lng") != "" {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must both be numbers"})
			return
		}
		var radius float64
		if r := c.Query("radius_km"); r != "" {
			var err error
			if radius, err = strconv.ParseFloat(r, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a number"})
				return
			}
		}
		stores := h.Stores.Nearby(lat, lng, radius)
		c.JSON(http.StatusOK, gin.H{"count": len(stores), "stores": stores})
		return
	}

	stores := h.Stores.All()
	c.JSON(http.StatusOK, gin.H{"count": len(stores), "stores": stores, "cities": h.Stores.Cities()})
}

// GetStore returns a single store
func (h *Handler) GetStore(c *gin.Context) {
	store, ok := h.Stores.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store})
}

// GetStateMachineInfo returns the full order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, s := range models.OrderStatuses {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"description":     "Coffee Order Lifecycle State Machine",
	})
}
