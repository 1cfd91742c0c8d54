package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes a fresh in-memory SQLite DB and test config.
func SetupTestDB() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	config.AppConfig = &config.Config{
		JWTSecret:         "test_secret_key_12345",
		RazorpayKeyID:         "rzp_test_key",
		RazorpayKeySecret:     "rzp_test_secret",
		RazorpayWebhookSecret: "whsec_test",
	}

	db, _ := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
	})
	// A pooled second connection would see its own empty in-memory database
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	db.AutoMigrate(
		&models.AdminUser{},
		&models.Prompt{},
		&models.Blog{},
		&models.PremiumPack{},
		&models.Order{},
		&models.EmailLead{},
		&models.TrendingImage{},
	)
	database.DB = db
}

// performJSON runs a JSON request against a router and returns the recorder.
func performJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &out)
	return out
}
