package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/logger"
	"github.com/sacknest/sacknest-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminRegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminLogin checks the salted hash and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	var admin models.AdminUser
	if result := database.DB.Where("email = ?", input.Email).First(&admin); result.Error != nil {
		logger.Warn().Str("email", input.Email).Msg("Admin login failed: not found")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		logger.Warn().Str("email", input.Email).Msg("Admin login failed: invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info().Str("admin_id", admin.ID).Msg("Admin logged in")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
		},
	})
}

// AdminRegister creates an admin credential. A duplicate email is a hard
// conflict, surfaced by the unique index on the insert itself.
func AdminRegister(c *gin.Context) {
	var input AdminRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.AdminUser{
		ID:           utils.GenerateID("admin"),
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if result := database.DB.Create(&admin); result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Admin already exists"})
			return
		}
		logger.Error().Err(result.Error).Msg("Admin registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	logger.Info().Str("admin_id", admin.ID).Msg("Admin registered")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
		},
	})
}

// AdminLogout revokes the current token server-side when Redis is present.
// Without Redis the token stays valid until its natural expiry.
func AdminLogout(c *gin.Context) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusOK, gin.H{"message": "Already logged out"})
		return
	}

	claims, ok := claimsVal.(*utils.Claims)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "Already logged out"})
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := database.BlacklistToken(claims.JTI(), ttl); err != nil {
			logger.Warn().Err(err).Msg("Failed to blacklist token")
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
