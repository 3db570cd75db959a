package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware attaches a conversation session ID to the request.
// Chat is anonymous, so unlike an auth middleware this never rejects:
// a missing X-Session-ID header just gets a fresh UUID, echoed back in
// the response so the client can keep it for the rest of the session.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set("session_id", sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session ID from gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
