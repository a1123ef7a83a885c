package handlers

import (
	"errors"
	"net/http"

	"kacip-storefront/identity"
	"kacip-storefront/middleware"
	"kacip-storefront/session"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer account and signs the calling client in with it
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registrar, ok := h.Identity.(Registrar)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Registration is not available"})
		return
	}
	if _, _, err := registrar.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone); err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	h.login(c, req.Email, req.Password, http.StatusCreated, "Account created successfully")
}

// Login signs the calling client in and returns the bearer token alongside the user
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.login(c, req.Email, req.Password, http.StatusOK, "Login successful")
}

func (h *Handler) login(c *gin.Context, email, password string, status int, message string) {
	inst := middleware.Instance(c)
	user, err := inst.Session.Login(c.Request.Context(), email, password)
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	case errors.Is(err, session.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": "A newer sign-in request replaced this one"})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login failed. Please try again later."})
		return
	}

	c.JSON(status, gin.H{
		"message": message,
		"token":   inst.Session.Token(),
		"user":    user,
	})
}

// Logout always signs the client out locally; remote revocation is best-effort
func (h *Handler) Logout(c *gin.Context) {
	_ = middleware.Instance(c).Session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetSession returns the client's current session view
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": middleware.Instance(c).Session.Snapshot()})
}

// GetProfile returns the identity behind the request's token
func (h *Handler) GetProfile(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{"user": id})
}
