package routes

import (
	"kacip-storefront/app"
	"kacip-storefront/handlers"
	"kacip-storefront/middleware"
	"kacip-storefront/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, registry *app.Registry) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Menu & stores (no client state needed)
		public.GET("/menu", h.ListMenu)
		public.GET("/menu/categories", h.ListCategories)
		public.GET("/menu/items/:id", h.GetMenuItem)
		public.GET("/stores", h.ListStores)
		public.GET("/stores/:id", h.GetStore)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Client routes ──────────────────────────────────────────────
	client := r.Group("/api")
	client.Use(middleware.ClientContext(registry))
	{
		// Session
		client.POST("/auth/register", h.Register)
		client.POST("/auth/login", h.Login)
		client.POST("/auth/logout", h.Logout)
		client.GET("/auth/session", h.GetSession)

		// Cart & checkout
		client.GET("/cart", h.GetCart)
		client.POST("/cart/items", h.AddCartItem)
		client.PUT("/cart/items/:id", h.UpdateCartItem)
		client.DELETE("/cart/items/:id", h.RemoveCartItem)
		client.DELETE("/cart", h.ClearCart)
		client.POST("/cart/checkout", h.Checkout)

		// Live updates
		client.GET("/events", h.Events)
		client.POST("/menu/typeahead", h.Typeahead)
		client.GET("/notifications", h.ListNotifications)
		client.DELETE("/notifications/:id", h.DismissNotification)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.ClientContext(registry), middleware.AuthRequired(h.Identity))
	{
		auth.GET("/profile", h.GetProfile)
		auth.GET("/orders", h.GetMyOrders)
		auth.GET("/orders/:id", h.GetOrderDetail)
		auth.PUT("/orders/:id/cancel", h.CancelOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(
		middleware.ClientContext(registry),
		middleware.AuthRequired(h.Identity),
		middleware.RoleRequired(models.RoleAdmin),
	)
	{
		admin.GET("/dashboard", h.AdminDashboard)

		// Order management
		admin.GET("/orders", h.AdminListOrders)
		admin.GET("/orders/:id", h.AdminGetOrder)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/force-status", h.AdminForceOrderStatus)

		// Customers
		admin.GET("/customers", h.AdminListCustomers)
		admin.PUT("/customers/:id/toggle", h.AdminToggleCustomer)

		// Menu management
		admin.GET("/menu/stats", h.GetMenuStats)
		admin.POST("/menu", h.CreateMenuItem)
		admin.PUT("/menu/:id", h.UpdateMenuItem)
		admin.DELETE("/menu/:id", h.DeleteMenuItem)
		admin.PUT("/menu/:id/availability", h.SetMenuItemAvailability)
		admin.POST("/menu/cache/invalidate", h.InvalidateMenuCache)
	}
}
