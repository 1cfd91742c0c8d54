package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/handlers"
)

// RegisterCatalogRoutes wires the public read surface plus lead capture.
func RegisterCatalogRoutes(r gin.IRouter) {
	r.GET("/prompts", handlers.ListPrompts)
	r.GET("/prompts/:id", handlers.GetPrompt)
	r.GET("/categories", handlers.ListCategories)

	r.GET("/blogs", handlers.ListBlogs)
	r.GET("/blogs/:idOrSlug", handlers.GetBlog)

	r.GET("/premium-packs", handlers.ListPremiumPacks)

	r.GET("/trending-ai-images", handlers.ListTrendingImages)
	r.GET("/trending-ai-images/:id", handlers.GetTrendingImage)

	r.POST("/email-leads", handlers.CreateEmailLead)
}
