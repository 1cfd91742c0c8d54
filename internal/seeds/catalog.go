package seeds

import (
	"time"

	"github.com/lib/pq"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/utils"
	"gorm.io/gorm"
)

// SeedCatalog inserts a small sample catalog for local development. Existing
// rows are left alone; seeding an already-populated store is a no-op.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&models.Prompt{}).Count(&count)
	if count > 0 {
		return nil
	}

	prompts := []models.Prompt{
		{
			ID:         utils.GenerateID("prompt"),
			Title:      "Cinematic Portrait",
			Category:   "Photography",
			Tags:       pq.StringArray{"portrait", "cinematic", "lighting"},
			PromptText: "A cinematic portrait of a person, dramatic rim lighting, shallow depth of field, 85mm lens",
			IsPremium:  false,
			CreatedAt:  time.Now(),
		},
		{
			ID:         utils.GenerateID("prompt"),
			Title:      "Isometric City Block",
			Category:   "Illustration",
			Tags:       pq.StringArray{"isometric", "city", "vector"},
			PromptText: "Isometric illustration of a city block, pastel palette, clean vector style, soft shadows",
			IsPremium:  true,
			CreatedAt:  time.Now(),
		},
		{
			ID:         utils.GenerateID("prompt"),
			Title:      "Product Launch Email",
			Category:   "Marketing",
			Tags:       pq.StringArray{"email", "copywriting"},
			PromptText: "Write a product launch email announcing a new productivity app, friendly tone, one clear call to action",
			IsPremium:  false,
			CreatedAt:  time.Now(),
		},
	}
	for _, p := range prompts {
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}

	blog := models.Blog{
		ID:              utils.GenerateID("blog"),
		Title:           "Getting Better Results From Image Prompts",
		Slug:            "better-image-prompts",
		ContentMarkdown: "# Getting Better Results\n\nStructure your prompts as subject, style, lighting, and lens...",
		Published:       true,
		CreatedAt:       time.Now(),
	}
	if err := db.Create(&blog).Error; err != nil {
		return err
	}

	pack := models.PremiumPack{
		ID:          utils.GenerateID("pack"),
		Name:        "Starter Prompt Pack",
		Description: "100 curated prompts across photography, illustration, and marketing.",
		PriceInr:    499,
		PriceUsd:    9,
		Enabled:     true,
		CreatedAt:   time.Now(),
	}
	return db.Create(&pack).Error
}
