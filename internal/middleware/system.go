package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
)

// RequireDatabase short-circuits data routes with a uniform 503 when the
// store was not configured at boot. Health stays reachable so operators can
// see the configuration flags.
func RequireDatabase() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !database.IsConfigured() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "Database not configured",
				"message": "Set DATABASE_URL and restart the server.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
