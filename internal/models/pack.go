package models

import "time"

// PremiumPack is a purchasable bundle. FileURL is populated by the pack-file
// upload flow; until it is set, paid orders for the pack cannot be resolved
// to a download.
type PremiumPack struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	PriceInr float64 `gorm:"column:priceInr" json:"priceInr"`
	PriceUsd float64 `gorm:"column:priceUsd" json:"priceUsd"`

	FileURL string `gorm:"column:fileUrl" json:"fileUrl,omitempty"`
	Enabled bool   `gorm:"default:true" json:"enabled"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (PremiumPack) TableName() string {
	return "premium_packs"
}
