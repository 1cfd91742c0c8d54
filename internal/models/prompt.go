package models

import (
	"time"

	"github.com/lib/pq"
)

type Prompt struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	Title    string `json:"title"`
	Category string `gorm:"index" json:"category"`

	// Ordered tag list, stored as a Postgres text array
	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`

	PromptText      string `gorm:"column:promptText" json:"promptText"`
	ExampleOutput   string `gorm:"column:exampleOutput" json:"exampleOutput,omitempty"`
	ExampleImageURL string `gorm:"column:exampleImageUrl" json:"exampleImageUrl,omitempty"`
	IsPremium       bool   `gorm:"column:isPremium;default:false" json:"isPremium"`

	SeoTitle       string `gorm:"column:seoTitle" json:"seoTitle,omitempty"`
	SeoDescription string `gorm:"column:seoDescription" json:"seoDescription,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
}
