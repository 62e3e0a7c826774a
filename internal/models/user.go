package models

import (
	"time"

	"gorm.io/gorm"
)

// User covers all three roles. Sellers carry a store name and must be
// verified by an admin before their routes open up.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FullName     string         `gorm:"default:''" json:"full_name"`
	Role         string         `gorm:"type:varchar(20);index;not null" json:"role"`
	StoreName    string         `gorm:"default:''" json:"store_name,omitempty"`
	IsVerified   bool           `gorm:"default:false;index" json:"is_verified"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
