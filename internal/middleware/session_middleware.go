package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// one year, the cart's own TTL is shorter
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// CartSession gives every visitor a stable device-scoped session id. The
// guest cart hangs off this id, so it must exist before any cart handler
// runs.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
