package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func authRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/admin/login", AdminLogin)
	r.POST("/api/auth/admin/register", AdminRegister)
	return r
}

func seedAdmin(t *testing.T, email, password string) models.AdminUser {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	admin := models.AdminUser{
		ID:           utils.GenerateID("admin"),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	database.DB.Create(&admin)
	return admin
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	SetupTestDB()
	seedAdmin(t, "admin@example.com", "Correct-Horse-1!")

	w := performJSON(authRouter(), "POST", "/api/auth/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(w)["error"])
}

func TestAdminLogin_UnknownEmail(t *testing.T) {
	SetupTestDB()

	w := performJSON(authRouter(), "POST", "/api/auth/admin/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})

	// Identical response to a wrong password
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(w)["error"])
}

func TestAdminLogin_Success(t *testing.T) {
	SetupTestDB()
	admin := seedAdmin(t, "admin@example.com", "Correct-Horse-1!")

	w := performJSON(authRouter(), "POST", "/api/auth/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "Correct-Horse-1!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(w)

	// Issued token round-trips back to the same subject
	token, _ := body["token"].(string)
	claims, err := utils.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestAdminRegister_DuplicateEmail(t *testing.T) {
	SetupTestDB()
	seedAdmin(t, "admin@example.com", "Correct-Horse-1!")

	w := performJSON(authRouter(), "POST", "/api/auth/admin/register", map[string]string{
		"email":    "admin@example.com",
		"password": "AnotherPass1!",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Admin already exists", decodeBody(w)["error"])

	var count int64
	database.DB.Model(&models.AdminUser{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAdminRegister_Success(t *testing.T) {
	SetupTestDB()

	w := performJSON(authRouter(), "POST", "/api/auth/admin/register", map[string]string{
		"email":    "new@example.com",
		"password": "FreshPass1!",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var admin models.AdminUser
	err := database.DB.Where("email = ?", "new@example.com").First(&admin).Error
	assert.NoError(t, err)

	// Stored hash verifies, plaintext is never persisted
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("FreshPass1!")))
}
