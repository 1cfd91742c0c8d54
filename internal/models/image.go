package models

import "time"

// TrendingImage is a showcased AI-generated image with the prompt and tool
// that produced it. The binary lives in object storage; ImageURL points at it.
type TrendingImage struct {
	ID         string `gorm:"primaryKey;type:text" json:"id"`
	ImageURL   string `gorm:"column:imageUrl" json:"imageUrl"`
	PromptText string `gorm:"column:promptText" json:"promptText"`
	AiToolName string `gorm:"column:aiToolName" json:"aiToolName"`
	AiToolURL  string `gorm:"column:aiToolUrl" json:"aiToolUrl,omitempty"`
	Title      string `json:"title,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (TrendingImage) TableName() string {
	return "trending_ai_images"
}
