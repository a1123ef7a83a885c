package middleware

import (
	"net/http"
	"regexp"

	"kacip-storefront/app"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ClientIDHeader = "X-Client-ID"
	ClientIDCookie = "client_id"

	instanceKey  = "instance"
	cookieMaxAge = 365 * 24 * 60 * 60
)

var validClientID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ClientContext attaches the caller's application instance. The client id comes from the
// X-Client-ID header or the client_id cookie; a new one is issued when neither is usable.
func ClientContext(registry *app.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(ClientIDHeader)
		if id == "" {
			id, _ = c.Cookie(ClientIDCookie)
		}
		if !validClientID.MatchString(id) {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(ClientIDCookie, id, cookieMaxAge, "/", "", false, true)
		c.Header(ClientIDHeader, id)

		c.Set(instanceKey, registry.Get(c.Request.Context(), id))
		c.Next()
	}
}

// Instance returns the application instance set by ClientContext, or nil
func Instance(c *gin.Context) *app.Instance {
	val, ok := c.Get(instanceKey)
	if !ok {
		return nil
	}
	inst, _ := val.(*app.Instance)
	return inst
}
