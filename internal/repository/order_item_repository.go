package repository

import (
	"errors"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// OrderItemRepository is the order line data access interface.
type OrderItemRepository interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetByIDAndSeller(id, sellerID uint) (*models.OrderItem, error)
	ListByOrder(orderID uint) ([]models.OrderItem, error)
	List(filter OrderItemListFilter) ([]models.OrderItem, int64, error)
	Updates(id uint, updates map[string]interface{}) error
	WithTx(tx *gorm.DB) *GormOrderItemRepository
}

// GormOrderItemRepository is the GORM implementation.
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository creates an order item repository.
func NewOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormOrderItemRepository) WithTx(tx *gorm.DB) *GormOrderItemRepository {
	if tx == nil {
		return r
	}
	return &GormOrderItemRepository{db: tx}
}

// GetByID fetches an order line with its variant, nil when missing.
func (r *GormOrderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.Preload("Variant").Preload("Variant.Product").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDAndSeller fetches an order line scoped to its seller, nil when missing.
func (r *GormOrderItemRepository) GetByIDAndSeller(id, sellerID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.Preload("Variant").Preload("Variant.Product").
		Where("id = ? AND seller_id = ?", id, sellerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByOrder returns every line of an order.
func (r *GormOrderItemRepository) ListByOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Preload("Variant").Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// List returns a page of order lines plus the total count.
func (r *GormOrderItemRepository) List(filter OrderItemListFilter) ([]models.OrderItem, int64, error) {
	query := r.db.Model(&models.OrderItem{})
	if filter.SellerID != 0 {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.OrderItem
	err := applyPagination(query.Preload("Variant").Preload("Variant.Product").Order("created_at desc"), filter.Page, filter.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Updates applies a partial update.
func (r *GormOrderItemRepository) Updates(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.OrderItem{}).Where("id = ?", id).Updates(updates).Error
}
