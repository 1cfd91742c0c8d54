package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

// AdminAuth gates a route on a valid admin bearer token. Any missing,
// malformed, expired, or revoked credential aborts with 401 before the
// handler touches the store.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Revoked via logout
		if database.IsTokenBlacklisted(claims.JTI()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			c.Abort()
			return
		}

		// The subject must still exist as an admin
		var admin models.AdminUser
		if err := database.DB.Select("id").First(&admin, "id = ?", claims.AdminID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			c.Abort()
			return
		}

		c.Set("adminId", claims.AdminID)
		c.Set("claims", claims)
		c.Next()
	}
}

// GetAdminID returns the authenticated admin's id from the request context.
func GetAdminID(c *gin.Context) string {
	id, _ := c.Get("adminId")
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}
