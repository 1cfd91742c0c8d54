// Command createadmin bootstraps an admin credential from the shell,
// so the open registration endpoint can stay disabled in deployments
// that want a single operator account.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: createadmin -email <email> -password <password>")
	}

	config.LoadConfig()
	database.Connect()
	if !database.IsConfigured() {
		log.Fatal("DATABASE_URL not set")
	}

	if err := database.DB.AutoMigrate(&models.AdminUser{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.AdminUser{
		ID:           utils.GenerateID("admin"),
		Email:        *email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		if database.IsUniqueViolation(err) {
			log.Fatalf("Admin %s already exists", *email)
		}
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Created admin %s (%s)", admin.Email, admin.ID)
}
