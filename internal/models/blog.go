package models

import "time"

type Blog struct {
	ID    string `gorm:"primaryKey;type:text" json:"id"`
	Title string `json:"title"`

	// Alternate lookup key for public URLs
	Slug string `gorm:"uniqueIndex" json:"slug"`

	ContentMarkdown string `gorm:"column:contentMarkdown" json:"contentMarkdown"`
	Published       bool   `gorm:"default:false" json:"published"`

	SeoTitle       string `gorm:"column:seoTitle" json:"seoTitle,omitempty"`
	SeoDescription string `gorm:"column:seoDescription" json:"seoDescription,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
}
