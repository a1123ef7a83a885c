package handlers

import (
	"errors"
	"net/http"

	"kacip-storefront/customers"
	"kacip-storefront/models"
	"kacip-storefront/orders"
	"kacip-storefront/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Dashboard ───────────────────────────────────────────────────────────────

// AdminDashboard aggregates order, customer and menu counters for the admin home page
func (h *Handler) AdminDashboard(c *gin.Context) {
	recent := h.Orders.List(orders.Filter{})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":        h.Orders.Stats(),
		"customers":     h.Customers.Stats(),
		"menu":          h.Catalog.Stats(),
		"recent_orders": recent,
	})
}

// ── Orders ──────────────────────────────────────────────────────────────────

// AdminListOrders returns every order, newest first, with a per-status summary
func (h *Handler) AdminListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}
	list := h.Orders.List(orders.Filter{
		Status:     status,
		CustomerID: c.Query("customer_id"),
		Query:      c.Query("q"),
	})

	summary := map[string]int{}
	for _, o := range list {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(list),
		"orders":        list,
	})
}

func (h *Handler) AdminGetOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":             order,
		"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// AdminUpdateOrderStatus moves an order along the staff lifecycle
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := h.Orders.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order, err := h.Orders.UpdateStatus(id, req.Status, statemachine.ActorStaff, req.Note)
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"reason":            err.Error(),
			"current_state":     current.Status,
			"valid_next_states": statemachine.ValidTransitionsFrom(current.Status),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": current.Status,
		"new_status":      order.Status,
		"is_terminal":     statemachine.IsTerminal(order.Status),
	})
}

// AdminForceOrderStatus lets admin override any order state (emergency use)
func (h *Handler) AdminForceOrderStatus(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
		Reason string             `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := h.Orders.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	order, err := h.Orders.ForceStatus(id, req.Status, req.Reason)
	switch {
	case errors.Is(err, orders.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status force-updated by admin",
		"order_id":        order.ID,
		"previous_status": current.Status,
		"new_status":      order.Status,
	})
}

// ── Customers ───────────────────────────────────────────────────────────────

func (h *Handler) AdminListCustomers(c *gin.Context) {
	list := h.Customers.List(customers.Filter{
		Status: models.CustomerStatus(c.Query("status")),
		Query:  c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{
		"count":     len(list),
		"customers": list,
		"stats":     h.Customers.Stats(),
	})
}

// AdminToggleCustomer flips a customer between active and inactive
func (h *Handler) AdminToggleCustomer(c *gin.Context) {
	customer, err := h.Customers.ToggleStatus(c.Param("id"))
	if errors.Is(err, customers.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer status updated", "customer": customer})
}
