package middleware

import (
	"errors"
	"net/http"
	"strings"

	"kacip-storefront/identity"
	"kacip-storefront/models"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthRequired resolves the caller through the identity backend and injects it into the
// context. The bearer header wins; without one, the client's own session token is used.
// Either way the backend decides, never a client-side flag.
func AuthRequired(backend identity.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if inst := Instance(c); inst != nil {
				token = inst.Session.Token()
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}

		id, err := backend.CurrentUser(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Invalid or expired token"
			if !errors.Is(err, identity.ErrInvalidToken) {
				status = http.StatusServiceUnavailable
				msg = "Identity service unavailable"
			}
			c.JSON(status, gin.H{"error": msg})
			c.Abort()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// CurrentIdentity extracts the authenticated caller from context
func CurrentIdentity(c *gin.Context) (identity.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return identity.Identity{}, false
	}
	id, ok := val.(identity.Identity)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
