package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one cart line materialized into an order. It carries its own
// seller reference so each seller only sees their own items, and a unit-price
// snapshot taken at placement time.
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	OrderID      uint           `gorm:"index;not null" json:"order_id"`
	VariantID    uint           `gorm:"index;not null" json:"variant_id"`
	SellerID     uint           `gorm:"index;not null" json:"seller_id"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Status       string         `gorm:"type:varchar(30);index;not null" json:"status"`
	ReturnReason string         `gorm:"type:varchar(500)" json:"return_reason,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Seller  *User           `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
