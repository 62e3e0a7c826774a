package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is one checkout event. The total is fixed at creation time
// (materialized line totals plus the delivery fee) and never recomputed.
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	OrderNumber       string         `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerID        uint           `gorm:"index;not null" json:"customer_id"`
	ShipmentAddressID uint           `gorm:"index;not null" json:"shipment_address_id"`
	PaymentMethod     string         `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus     string         `gorm:"type:varchar(20);index;not null" json:"payment_status"`
	StripeSessionID   string         `gorm:"type:varchar(255);index" json:"stripe_session_id,omitempty"`
	TotalAmount       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	IsCanceled        bool           `gorm:"default:false;index" json:"is_canceled"`
	CanceledAt        *time.Time     `json:"canceled_at"`
	IsCompleted       bool           `gorm:"default:false;index" json:"is_completed"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Items           []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Customer        *User            `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ShipmentAddress *ShipmentAddress `gorm:"foreignKey:ShipmentAddressID" json:"shipment_address,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
