package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// Session associates each client with a cart session. A uuid cookie is
// issued on first contact so concurrent shoppers get their own carts
// instead of sharing one process-wide cart.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			// Cookie lives for 7 days; HttpOnly keeps it out of page scripts.
			c.SetCookie(sessionCookie, sessionID, 7*24*3600, "/", "", false, true)
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// SessionID reads the session identifier set by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}
