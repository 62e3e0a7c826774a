package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductVariant is the sellable SKU under a product. Stock is the only
// contended mutable field; every placement, cancellation and accepted
// return mutates it through guarded updates.
type ProductVariant struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ProductID     uint           `gorm:"index;not null" json:"product_id"`
	Color         string         `gorm:"type:varchar(50)" json:"color"`
	Size          string         `gorm:"type:varchar(50)" json:"size"`
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Stock         int            `gorm:"not null;default:0" json:"stock"`
	IsAvailable   bool           `gorm:"default:true;index" json:"is_available"`
	PackedWeightG int            `gorm:"not null;default:0" json:"packed_weight_g"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (ProductVariant) TableName() string {
	return "product_variants"
}
