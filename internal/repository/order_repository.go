package repository

import (
	"errors"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	GetByID(id uint) (*models.Order, error)
	GetByIDAndCustomer(id, customerID uint) (*models.Order, error)
	GetByStripeSession(sessionID string) (*models.Order, error)
	Create(order *models.Order) error
	Updates(id uint, updates map[string]interface{}) error
	List(filter OrderListFilter) ([]models.Order, int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) preloaded() *gorm.DB {
	return r.db.Preload("Items").Preload("Items.Variant").Preload("Items.Variant.Product").
		Preload("ShipmentAddress")
}

// GetByID fetches an order with lines and address, nil when missing.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByIDAndCustomer fetches an order scoped to its owner, nil when missing.
func (r *GormOrderRepository) GetByIDAndCustomer(id, customerID uint) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().Where("id = ? AND customer_id = ?", id, customerID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByStripeSession fetches the order tied to a checkout session, nil when missing.
func (r *GormOrderRepository) GetByStripeSession(sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().Where("stripe_session_id = ?", sessionID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts an order together with its lines.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// Updates applies a partial update.
func (r *GormOrderRepository) Updates(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// List returns a page of orders plus the total count.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if status := strings.TrimSpace(filter.PaymentStatus); status != "" {
		query = query.Where("payment_status = ?", status)
	}
	if number := strings.TrimSpace(filter.OrderNumber); number != "" {
		query = query.Where("order_number = ?", number)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	err := applyPagination(query.Preload("Items").Preload("Items.Variant").Order("created_at desc"), filter.Page, filter.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
