package database

import (
	"errors"
	"log"
	"time"

	"github.com/lib/pq"
	"github.com/sacknest/sacknest-backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the Postgres connection. A missing DATABASE_URL is not
// fatal: the server still boots and data routes answer 503 until the store
// is configured.
func Connect() {
	dsn := config.AppConfig.DatabaseURL
	if dsn == "" {
		log.Println("DATABASE_URL not set, data routes will be unavailable")
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	log.Println("Connected to PostgreSQL with connection pooling (max: 25, idle: 10)")
}

// IsConfigured reports whether a store connection exists.
func IsConfigured() bool {
	return DB != nil
}

// IsUniqueViolation detects duplicate-key failures so writes against unique
// columns (lead email, admin email, blog slug) can be mapped to a conflict
// instead of a server error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
