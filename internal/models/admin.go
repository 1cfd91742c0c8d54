package models

import "time"

// AdminUser is the only authenticated principal in the system. Rows are
// created via the registration path or the createadmin CLI, never deleted
// by the API.
type AdminUser struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:passwordHash" json:"-"`
	CreatedAt    time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
