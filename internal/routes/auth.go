package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/handlers"
	"github.com/sacknest/sacknest-backend/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	admin := r.Group("/auth/admin")
	{
		admin.POST("/login", handlers.AdminLogin)
		admin.POST("/register", handlers.AdminRegister)
		admin.POST("/logout", middleware.AdminAuth(), handlers.AdminLogout)
	}
}
