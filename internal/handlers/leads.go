package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

type CreateLeadInput struct {
	Email  string `json:"email" binding:"required"`
	Source string `json:"source"`
}

// CreateEmailLead captures a newsletter signup, idempotent on email. The
// unique index decides duplicates; a concurrent second insert for the same
// address lands on the conflict branch instead of racing a pre-check.
func CreateEmailLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil || !strings.Contains(input.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required"})
		return
	}

	source := input.Source
	if source == "" {
		source = "unknown"
	}

	lead := models.EmailLead{
		ID:        utils.GenerateID("lead"),
		Email:     input.Email,
		Source:    source,
		Consent:   true,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&lead).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Already subscribed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscribed successfully"})
}

// AdminListEmailLeads returns all captured leads, newest first.
func AdminListEmailLeads(c *gin.Context) {
	var leads []models.EmailLead
	if err := database.DB.Order(`"createdAt" DESC`).Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leads)
}
