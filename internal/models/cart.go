package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart holds a customer's selected variants. At most one cart per customer;
// it is emptied, never deleted, when an order is placed from it.
type Cart struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CustomerID uint           `gorm:"uniqueIndex;not null" json:"customer_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one (variant, quantity) line of a cart.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CartID    uint           `gorm:"not null;uniqueIndex:idx_cart_variant" json:"cart_id"`
	VariantID uint           `gorm:"not null;uniqueIndex:idx_cart_variant" json:"variant_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
