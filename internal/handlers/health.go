package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
)

// Health reports liveness plus configuration-presence flags. It stays
// reachable even when the store is not configured.
func Health(c *gin.Context) {
	dbStatus := "not configured"
	if database.IsConfigured() {
		dbStatus = "ok"
		if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}
	}

	status := "ok"
	if dbStatus == "error" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             status,
		"databaseConfigured": database.IsConfigured(),
		"razorpayConfigured": config.AppConfig.RazorpayConfigured(),
		"storageConfigured":  config.AppConfig.StorageConfigured(),
		"checks": gin.H{
			"database": dbStatus,
		},
	})
}
