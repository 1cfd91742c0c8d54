package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/handlers"
	"github.com/sacknest/sacknest-backend/internal/middleware"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/internal/routes"
	"github.com/sacknest/sacknest-backend/pkg/logger"
)

func main() {
	// 1. Load config & initialize logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting SackNest Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Connect stores. A missing DATABASE_URL is tolerated: the server
	// boots in degraded mode and data routes answer 503.
	database.Connect()
	database.InitRedis()

	if database.IsConfigured() {
		logger.Info().Msg("Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.AdminUser{},
			&models.Prompt{},
			&models.Blog{},
			&models.PremiumPack{},
			&models.Order{},
			&models.EmailLead{},
			&models.TrendingImage{},
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		logger.Info().Msg("Database migrations complete")
	}

	// 3. Setup router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// 4. Register routes
	api := r.Group("/api")
	{
		// Health stays reachable without a configured store
		api.GET("/health", handlers.Health)

		auth := api.Group("")
		auth.Use(middleware.AuthRateLimit(), middleware.RequireDatabase())
		routes.RegisterAuthRoutes(auth)

		data := api.Group("")
		data.Use(middleware.RequireDatabase())
		routes.RegisterCatalogRoutes(data)
		routes.RegisterPaymentRoutes(data)
		routes.RegisterAdminRoutes(data)
	}

	// 5. Start server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
