package models

import (
	"time"

	"gorm.io/gorm"
)

// ShipmentAddress is a customer-owned delivery destination. At most one
// address per customer may be default and at most one active; both flags
// are flipped inside a transaction.
type ShipmentAddress struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CustomerID uint           `gorm:"index;not null" json:"customer_id"`
	FullName   string         `gorm:"not null" json:"full_name"`
	Phone      string         `gorm:"type:varchar(30);not null" json:"phone"`
	Region     string         `gorm:"type:varchar(100)" json:"region"`
	City       string         `gorm:"type:varchar(100);not null" json:"city"`
	Street     string         `gorm:"type:varchar(255);not null" json:"street"`
	IsDefault  bool           `gorm:"default:false;index" json:"is_default"`
	IsActive   bool           `gorm:"default:false;index" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (ShipmentAddress) TableName() string {
	return "shipment_addresses"
}
