// Command seeder fills a development database with sample catalog rows.
package main

import (
	"log"

	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()
	if !database.IsConfigured() {
		log.Fatal("DATABASE_URL not set")
	}

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
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seeds.SeedCatalog(database.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
