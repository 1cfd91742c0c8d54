package handlers

import (
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/internal/services"
	"github.com/sacknest/sacknest-backend/pkg/logger"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

// objectKeyFromURL recovers a storage key from a stored public URL. Only
// the path component is used, so keys survive a later change of the
// configured public base domain.
func objectKeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

func ListTrendingImages(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	var images []models.TrendingImage
	if err := database.DB.Order(`"createdAt" DESC`).Limit(limit).Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}

func GetTrendingImage(c *gin.Context) {
	var image models.TrendingImage
	if err := database.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, image)
}

// AdminCreateTrendingImage accepts a multipart form: the image binary plus
// prompt metadata. The binary lands in object storage before the row is
// inserted.
func AdminCreateTrendingImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}
	defer file.Close()

	promptText := c.Request.FormValue("promptText")
	aiToolName := c.Request.FormValue("aiToolName")
	if promptText == "" || aiToolName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "promptText and aiToolName required"})
		return
	}

	if err := validateImageFile(header); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storage, err := services.NewStorage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not configured"})
		return
	}

	id := utils.GenerateID("ai")
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := "images/" + id + ext

	imageURL, err := storage.Upload(c.Request.Context(), key, header.Header.Get("Content-Type"), file)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Trending image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	image := models.TrendingImage{
		ID:         id,
		ImageURL:   imageURL,
		PromptText: promptText,
		AiToolName: aiToolName,
		AiToolURL:  c.Request.FormValue("aiToolUrl"),
		Title:      c.Request.FormValue("title"),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := database.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database insert failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trending AI image added successfully",
		"data":    image,
	})
}

type UpdateTrendingImageInput struct {
	PromptText *string `json:"promptText"`
	AiToolName *string `json:"aiToolName"`
	AiToolURL  *string `json:"aiToolUrl"`
	Title      *string `json:"title"`
}

// AdminUpdateTrendingImage accepts either multipart (metadata plus an
// optional replacement image) or a plain JSON metadata update.
func AdminUpdateTrendingImage(c *gin.Context) {
	id := c.Param("id")

	var image models.TrendingImage
	if err := database.DB.Where("id = ?", id).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	updates := map[string]interface{}{}

	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		if v := c.Request.FormValue("promptText"); v != "" {
			updates["promptText"] = v
		}
		if v := c.Request.FormValue("aiToolName"); v != "" {
			updates["aiToolName"] = v
		}
		if v := c.Request.FormValue("aiToolUrl"); v != "" {
			updates["aiToolUrl"] = v
		}
		if v := c.Request.FormValue("title"); v != "" {
			updates["title"] = v
		}

		if file, header, err := c.Request.FormFile("image"); err == nil {
			defer file.Close()

			if err := validateImageFile(header); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			storage, err := services.NewStorage(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not configured"})
				return
			}

			ext := strings.ToLower(filepath.Ext(header.Filename))
			if ext == "" {
				ext = ".jpg"
			}
			key := "images/" + id + ext

			imageURL, err := storage.Upload(c.Request.Context(), key, header.Header.Get("Content-Type"), file)
			if err != nil {
				logger.Error().Err(err).Str("key", key).Msg("Trending image upload failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
				return
			}
			updates["imageUrl"] = imageURL
		}
	} else {
		var input UpdateTrendingImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.PromptText != nil {
			updates["promptText"] = *input.PromptText
		}
		if input.AiToolName != nil {
			updates["aiToolName"] = *input.AiToolName
		}
		if input.AiToolURL != nil {
			updates["aiToolUrl"] = *input.AiToolURL
		}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
	}

	updates["updatedAt"] = time.Now()

	if err := database.DB.Model(&image).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trending image updated successfully",
		"data":    image,
	})
}

// AdminDeleteTrendingImage removes the stored object first, then the row.
func AdminDeleteTrendingImage(c *gin.Context) {
	id := c.Param("id")

	var image models.TrendingImage
	if err := database.DB.Where("id = ?", id).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	storage, err := services.NewStorage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not configured"})
		return
	}

	key := objectKeyFromURL(image.ImageURL)
	if key != "" {
		if err := storage.Delete(c.Request.Context(), key); err != nil {
			logger.Error().Err(err).Str("key", key).Msg("Storage delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
			return
		}
	}

	if err := database.DB.Delete(&models.TrendingImage{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trending image deleted successfully",
	})
}
