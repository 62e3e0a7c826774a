package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray stores image URL lists as a JSON column.
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Product is seller-owned catalog data; sellable SKUs live in ProductVariant.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	SellerID    uint           `gorm:"index;not null" json:"seller_id"`
	CategoryID  uint           `gorm:"index;not null" json:"category_id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Images      StringArray    `gorm:"type:json" json:"images"`
	SellCount   int            `gorm:"not null;default:0" json:"sell_count"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Seller   *User            `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
