package handlers

import (
	"context"
	"net/http"
	"strconv"

	"kacip-storefront/catalog"
	"kacip-storefront/customers"
	"kacip-storefront/identity"
	"kacip-storefront/locations"
	"kacip-storefront/orders"

	"github.com/gin-gonic/gin"
)

// Registrar is implemented by identity backends that accept self-registration
type Registrar interface {
	Register(ctx context.Context, name, email, password, phone string) (identity.Identity, string, error)
}

// Handler holds the shared application state every route works on. Per-client state is
// reached through middleware.Instance.
type Handler struct {
	Catalog   *catalog.Store
	Stores    *locations.Directory
	Orders    *orders.Book
	Customers *customers.Directory
	Identity  identity.Backend
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}
