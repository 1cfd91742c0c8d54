package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/logger"
	"github.com/sacknest/sacknest-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouteTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	config.AppConfig = &config.Config{JWTSecret: "test_secret_key_12345"}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A pooled second connection would see its own empty in-memory database
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.AdminUser{}, &models.Prompt{}, &models.Blog{},
		&models.PremiumPack{}, &models.Order{}, &models.EmailLead{},
		&models.TrendingImage{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	database.DB = db

	r := gin.New()
	api := r.Group("/api")
	RegisterAdminRoutes(api)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutes_RejectMissingToken(t *testing.T) {
	r := setupRouteTest(t)

	w := postJSON(r, "/api/admin/prompts", map[string]interface{}{
		"title":      "Sneaky",
		"category":   "misc",
		"promptText": "should never land",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The gate fires before the handler, nothing is written
	var count int64
	database.DB.Model(&models.Prompt{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAdminRoutes_RejectMalformedHeader(t *testing.T) {
	r := setupRouteTest(t)

	payload, _ := json.Marshal(map[string]string{"title": "x"})
	req := httptest.NewRequest("POST", "/api/admin/prompts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes_RejectTokenForDeletedAdmin(t *testing.T) {
	r := setupRouteTest(t)

	// Valid signature, but the subject no longer exists
	token, err := utils.GenerateToken("admin_gone")
	assert.NoError(t, err)

	w := postJSON(r, "/api/admin/prompts", map[string]interface{}{
		"title":      "Orphaned",
		"category":   "misc",
		"promptText": "stale session",
	}, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes_AcceptValidToken(t *testing.T) {
	r := setupRouteTest(t)

	admin := models.AdminUser{
		ID:           utils.GenerateID("admin"),
		Email:        "admin@example.com",
		PasswordHash: "irrelevant-for-this-test",
		CreatedAt:    time.Now(),
	}
	database.DB.Create(&admin)

	token, err := utils.GenerateToken(admin.ID)
	assert.NoError(t, err)

	w := postJSON(r, "/api/admin/prompts", map[string]interface{}{
		"title":      "Welcome email",
		"category":   "marketing",
		"promptText": "write a welcome email",
	}, token)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Prompt{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
