package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "luxestay_session"
	sessionKey    = "session_id"
)

// Session assigns every visitor a session cookie so the flow state has
// a stable key across the filter → book → pay → confirm steps.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID extracts the session id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
