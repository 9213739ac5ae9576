package middlewares

import (
	"net/http"

	"civiclens/store"

	"github.com/gin-gonic/gin"
)

// SessionRequired rejects requests without a live persisted session and puts
// the session profile in the gin context under "user". The session record is
// the entire auth state; there are no tokens.
func SessionRequired(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.Session()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
