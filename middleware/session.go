package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionID"

// SessionCookie gives every browser a session id cookie; the id selects the
// screen store of that browser.
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool
}

func Session(cfg SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.Name)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		// refresh on every request so the cookie slides with the server-side ttl
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Name, id, cfg.MaxAge, "/", "", cfg.Secure, true)
		c.Set(sessionIDKey, id)

		c.Next()
	}
}

func GetSessionIDFromContext(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
