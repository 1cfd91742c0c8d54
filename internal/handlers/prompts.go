package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

// ListPrompts returns prompts newest-first. Optional category and premium
// filters narrow the result; their absence means no constraint.
func ListPrompts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	query := database.DB.Model(&models.Prompt{}).Order(`"createdAt" DESC`).Limit(limit)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if premium := c.Query("premium"); premium != "" {
		query = query.Where(`"isPremium" = ?`, premium == "true")
	}

	var prompts []models.Prompt
	if err := query.Find(&prompts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prompts)
}

func GetPrompt(c *gin.Context) {
	var prompt models.Prompt
	if err := database.DB.Where("id = ?", c.Param("id")).First(&prompt).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// ListCategories returns the distinct non-empty category values across all
// prompts.
func ListCategories(c *gin.Context) {
	var categories []string
	err := database.DB.Model(&models.Prompt{}).
		Distinct("category").
		Where("category <> ''").
		Pluck("category", &categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type CreatePromptInput struct {
	Title           string   `json:"title" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Tags            []string `json:"tags"`
	PromptText      string   `json:"promptText" binding:"required"`
	ExampleOutput   string   `json:"exampleOutput"`
	ExampleImageURL string   `json:"exampleImageUrl"`
	IsPremium       bool     `json:"isPremium"`
	SeoTitle        string   `json:"seoTitle"`
	SeoDescription  string   `json:"seoDescription"`
}

func AdminCreatePrompt(c *gin.Context) {
	var input CreatePromptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, category, and prompt text required"})
		return
	}

	prompt := models.Prompt{
		ID:              utils.GenerateID("prompt"),
		Title:           input.Title,
		Category:        input.Category,
		Tags:            pq.StringArray(input.Tags),
		PromptText:      input.PromptText,
		ExampleOutput:   input.ExampleOutput,
		ExampleImageURL: input.ExampleImageURL,
		IsPremium:       input.IsPremium,
		SeoTitle:        input.SeoTitle,
		SeoDescription:  input.SeoDescription,
		CreatedAt:       time.Now(),
	}

	if err := database.DB.Create(&prompt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prompt)
}

type UpdatePromptInput struct {
	Title           *string   `json:"title"`
	Category        *string   `json:"category"`
	Tags            *[]string `json:"tags"`
	PromptText      *string   `json:"promptText"`
	ExampleOutput   *string   `json:"exampleOutput"`
	ExampleImageURL *string   `json:"exampleImageUrl"`
	IsPremium       *bool     `json:"isPremium"`
	SeoTitle        *string   `json:"seoTitle"`
	SeoDescription  *string   `json:"seoDescription"`
}

// AdminUpdatePrompt applies a partial update from an explicit input schema.
// Unknown fields in the payload are dropped, never persisted.
func AdminUpdatePrompt(c *gin.Context) {
	id := c.Param("id")

	var input UpdatePromptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(*input.Tags)
	}
	if input.PromptText != nil {
		updates["promptText"] = *input.PromptText
	}
	if input.ExampleOutput != nil {
		updates["exampleOutput"] = *input.ExampleOutput
	}
	if input.ExampleImageURL != nil {
		updates["exampleImageUrl"] = *input.ExampleImageURL
	}
	if input.IsPremium != nil {
		updates["isPremium"] = *input.IsPremium
	}
	if input.SeoTitle != nil {
		updates["seoTitle"] = *input.SeoTitle
	}
	if input.SeoDescription != nil {
		updates["seoDescription"] = *input.SeoDescription
	}

	var prompt models.Prompt
	if err := database.DB.Where("id = ?", id).First(&prompt).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
		return
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&prompt).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, prompt)
}

func AdminDeletePrompt(c *gin.Context) {
	if err := database.DB.Delete(&models.Prompt{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
