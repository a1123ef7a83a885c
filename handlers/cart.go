package handlers

import (
	"net/http"

	"kacip-storefront/middleware"
	"kacip-storefront/notify"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	// zero or less removes the line
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the caller's cart with its totals
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": middleware.Instance(c).Cart.Snapshot()})
}

// AddCartItem adds one of a menu item, merging with an existing line
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := h.Catalog.GetByID(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !item.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + item.Name + "' is not available"})
		return
	}

	inst := middleware.Instance(c)
	inst.Cart.AddItem(c.Request.Context(), item)
	inst.Notices.Notify(item.Name+" added to cart!", notify.Success)
	c.JSON(http.StatusOK, gin.H{"cart": inst.Cart.Snapshot()})
}

// UpdateCartItem sets a line's quantity. Ids not in the cart are ignored.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inst := middleware.Instance(c)
	inst.Cart.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": inst.Cart.Snapshot()})
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	inst := middleware.Instance(c)
	inst.Cart.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"cart": inst.Cart.Snapshot()})
}

func (h *Handler) ClearCart(c *gin.Context) {
	inst := middleware.Instance(c)
	inst.Cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"cart": inst.Cart.Snapshot()})
}
