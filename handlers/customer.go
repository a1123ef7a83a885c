package handlers

import (
	"errors"
	"net/http"
	"time"

	"kacip-storefront/middleware"
	"kacip-storefront/models"
	"kacip-storefront/notify"
	"kacip-storefront/orders"
	"kacip-storefront/statemachine"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email" binding:"omitempty,email"`
	OrderType       models.OrderType     `json:"order_type" binding:"omitempty,oneof=pickup delivery dine-in"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"omitempty,oneof=cash card online"`
	DeliveryAddress string               `json:"delivery_address"`
	Notes           string               `json:"notes"`
}

// Checkout turns the caller's cart into an order and empties the cart. Signed-in callers
// order under their own identity; guests must give a name and email.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inst := middleware.Instance(c)
	checkout := orders.Checkout{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		OrderType:       req.OrderType,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}
	if s := inst.Session.Snapshot(); s.IsAuthenticated {
		checkout.CustomerID = s.User.ID
		checkout.CustomerName = s.User.Name
		checkout.CustomerEmail = s.User.Email
	} else if req.CustomerName == "" || req.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_name and customer_email are required for guest checkout"})
		return
	}

	lines := inst.Cart.Lines()
	for _, l := range lines {
		item, ok := h.Catalog.GetByID(l.ID)
		if !ok || !item.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + l.Name + "' is not available"})
			return
		}
	}

	order, err := h.Orders.Place(checkout, lines)
	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	case errors.Is(err, orders.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// only what was ordered leaves the cart; items added meanwhile stay for the next order
	inst.Cart.Subtract(c.Request.Context(), lines)
	inst.Notices.Notify("Order "+order.OrderNumber+" placed successfully", notify.Success)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders returns all orders for the logged-in customer
func (h *Handler) GetMyOrders(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)
	list := h.Orders.List(orders.Filter{CustomerID: id.ID, Status: models.OrderStatus(c.Query("status"))})
	c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
}

// GetOrderDetail returns a single order's full detail with history
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, ok := h.ownOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(time.Since(order.CreatedAt).Minutes()),
	})
}

// CancelOrder cancels an order (customer can cancel PENDING or CONFIRMED)
func (h *Handler) CancelOrder(c *gin.Context) {
	order, ok := h.ownOrder(c)
	if !ok {
		return
	}

	updated, err := h.Orders.UpdateStatus(order.ID, models.StatusCancelled, statemachine.ActorCustomer, "Order cancelled by customer")
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	middleware.Instance(c).Notices.Notify("Order "+updated.OrderNumber+" cancelled", notify.Info)
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": updated.ID})
}

func (h *Handler) ownOrder(c *gin.Context) (models.Order, bool) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return models.Order{}, false
	}
	order, err := h.Orders.Get(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return models.Order{}, false
	}
	id, _ := middleware.CurrentIdentity(c)
	if order.CustomerID == "" || order.CustomerID != id.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return models.Order{}, false
	}
	return order, true
}
