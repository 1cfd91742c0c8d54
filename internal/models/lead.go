package models

import "time"

// EmailLead captures newsletter signups. Email carries a unique index; the
// insert path treats a duplicate-key error as "already subscribed".
type EmailLead struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Source    string    `json:"source"`
	Consent   bool      `gorm:"default:true" json:"consent"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (EmailLead) TableName() string {
	return "email_leads"
}
