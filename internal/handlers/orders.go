package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/internal/services"
)

// GetOrder is the public order detail lookup. Knowing the gateway order id
// is the capability; there is no auth.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := database.DB.Where(`"razorpayOrderId" = ?`, c.Param("orderId")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var pack *models.PremiumPack
	if order.PackID != "" {
		var p models.PremiumPack
		if err := database.DB.Where("id = ?", order.PackID).First(&p).Error; err == nil {
			pack = &p
		}
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "pack": pack})
}

// DownloadPack releases the pack file URL through the download gate.
func DownloadPack(c *gin.Context) {
	grant, denial := services.ResolveDownload(database.DB, c.Param("orderId"))
	if denial != nil {
		c.JSON(denial.Code, gin.H{"error": denial.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"downloadUrl": grant.DownloadURL,
		"packName":    grant.PackName,
	})
}

// AdminListOrders returns all orders, newest first.
func AdminListOrders(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.Order(`"createdAt" DESC`).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
