package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is admin-managed leaf catalog data.
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:varchar(500)" json:"description"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
