package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

// ListBlogs defaults to published posts only; ?published=false lifts the
// filter for the admin dashboard.
func ListBlogs(c *gin.Context) {
	query := database.DB.Model(&models.Blog{}).Order(`"createdAt" DESC`)

	if c.Query("published") != "false" {
		query = query.Where("published = ?", true)
	}

	var blogs []models.Blog
	if err := query.Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBlog looks up by id first and falls back to the slug. Two point
// lookups, no join.
func GetBlog(c *gin.Context) {
	identifier := c.Param("idOrSlug")

	var blog models.Blog
	if err := database.DB.Where("id = ?", identifier).First(&blog).Error; err != nil {
		if err := database.DB.Where("slug = ?", identifier).First(&blog).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
	}

	c.JSON(http.StatusOK, blog)
}

type CreateBlogInput struct {
	Title           string `json:"title" binding:"required"`
	Slug            string `json:"slug" binding:"required"`
	ContentMarkdown string `json:"contentMarkdown" binding:"required"`
	Published       bool   `json:"published"`
	SeoTitle        string `json:"seoTitle"`
	SeoDescription  string `json:"seoDescription"`
}

func AdminCreateBlog(c *gin.Context) {
	var input CreateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, slug, and content required"})
		return
	}

	blog := models.Blog{
		ID:              utils.GenerateID("blog"),
		Title:           input.Title,
		Slug:            input.Slug,
		ContentMarkdown: input.ContentMarkdown,
		Published:       input.Published,
		SeoTitle:        input.SeoTitle,
		SeoDescription:  input.SeoDescription,
		CreatedAt:       time.Now(),
	}

	if err := database.DB.Create(&blog).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A blog with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blog)
}

type UpdateBlogInput struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	ContentMarkdown *string `json:"contentMarkdown"`
	Published       *bool   `json:"published"`
	SeoTitle        *string `json:"seoTitle"`
	SeoDescription  *string `json:"seoDescription"`
}

func AdminUpdateBlog(c *gin.Context) {
	id := c.Param("id")

	var input UpdateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.ContentMarkdown != nil {
		updates["contentMarkdown"] = *input.ContentMarkdown
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}
	if input.SeoTitle != nil {
		updates["seoTitle"] = *input.SeoTitle
	}
	if input.SeoDescription != nil {
		updates["seoDescription"] = *input.SeoDescription
	}

	var blog models.Blog
	if err := database.DB.Where("id = ?", id).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&blog).Updates(updates).Error; err != nil {
			if database.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A blog with this slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, blog)
}

func AdminDeleteBlog(c *gin.Context) {
	if err := database.DB.Delete(&models.Blog{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
