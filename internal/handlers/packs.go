package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

// ListPremiumPacks defaults to enabled packs only; ?enabled=false lifts the
// filter for the admin dashboard.
func ListPremiumPacks(c *gin.Context) {
	query := database.DB.Model(&models.PremiumPack{})

	if c.Query("enabled") != "false" {
		query = query.Where("enabled = ?", true)
	}

	var packs []models.PremiumPack
	if err := query.Find(&packs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, packs)
}

type CreatePackInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	PriceInr    float64 `json:"priceInr" binding:"required"`
	PriceUsd    float64 `json:"priceUsd" binding:"required"`
	FileURL     string  `json:"fileUrl"`
	Enabled     *bool   `json:"enabled"`
}

func AdminCreatePack(c *gin.Context) {
	var input CreatePackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and prices required"})
		return
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	pack := models.PremiumPack{
		ID:          utils.GenerateID("pack"),
		Name:        input.Name,
		Description: input.Description,
		PriceInr:    input.PriceInr,
		PriceUsd:    input.PriceUsd,
		FileURL:     input.FileURL,
		Enabled:     enabled,
		CreatedAt:   time.Now(),
	}

	if err := database.DB.Create(&pack).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pack)
}

type UpdatePackInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	PriceInr    *float64 `json:"priceInr"`
	PriceUsd    *float64 `json:"priceUsd"`
	FileURL     *string  `json:"fileUrl"`
	Enabled     *bool    `json:"enabled"`
}

func AdminUpdatePack(c *gin.Context) {
	id := c.Param("id")

	var input UpdatePackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.PriceInr != nil {
		updates["priceInr"] = *input.PriceInr
	}
	if input.PriceUsd != nil {
		updates["priceUsd"] = *input.PriceUsd
	}
	if input.FileURL != nil {
		updates["fileUrl"] = *input.FileURL
	}
	if input.Enabled != nil {
		updates["enabled"] = *input.Enabled
	}

	var pack models.PremiumPack
	if err := database.DB.Where("id = ?", id).First(&pack).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
		return
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&pack).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, pack)
}

func AdminDeletePack(c *gin.Context) {
	if err := database.DB.Delete(&models.PremiumPack{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
