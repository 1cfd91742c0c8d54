package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/handlers"
	"github.com/sacknest/sacknest-backend/internal/middleware"
)

// RegisterAdminRoutes wires every admin-gated operation behind bearer auth.
func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth())

	// Prompt management
	admin.POST("/prompts", handlers.AdminCreatePrompt)
	admin.PUT("/prompts/:id", handlers.AdminUpdatePrompt)
	admin.DELETE("/prompts/:id", handlers.AdminDeletePrompt)

	// Blog management
	admin.POST("/blogs", handlers.AdminCreateBlog)
	admin.PUT("/blogs/:id", handlers.AdminUpdateBlog)
	admin.DELETE("/blogs/:id", handlers.AdminDeleteBlog)

	// Premium pack management
	admin.POST("/premium-packs", handlers.AdminCreatePack)
	admin.PUT("/premium-packs/:id", handlers.AdminUpdatePack)
	admin.DELETE("/premium-packs/:id", handlers.AdminDeletePack)

	// Trending AI images
	admin.POST("/trending-ai-images", handlers.AdminCreateTrendingImage)
	admin.PUT("/trending-ai-images/:id", handlers.AdminUpdateTrendingImage)
	admin.DELETE("/trending-ai-images/:id", handlers.AdminDeleteTrendingImage)

	// Listings
	admin.GET("/email-leads", handlers.AdminListEmailLeads)
	admin.GET("/orders", handlers.AdminListOrders)

	// Pack file upload lives outside the /admin prefix but is admin-gated
	r.POST("/upload-pack-file", middleware.AdminAuth(), handlers.UploadPackFile)
}
