package repository

import (
	"errors"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface. One cart per customer.
type CartRepository interface {
	GetByCustomer(customerID uint) (*models.Cart, error)
	Create(cart *models.Cart) error
	GetItem(cartID, variantID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(cartID, variantID uint) error
	ClearItems(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByCustomer fetches a customer's cart with lines and variant products,
// nil when the customer has no cart yet.
func (r *GormCartRepository) GetByCustomer(customerID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").Preload("Items.Variant").Preload("Items.Variant.Product").
		Where("customer_id = ?", customerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create inserts a cart.
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetItem fetches one cart line, nil when missing.
func (r *GormCartRepository) GetItem(cartID, variantID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND variant_id = ?", cartID, variantID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a cart line.
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItemQuantity sets a line's quantity.
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// DeleteItem removes one line from a cart.
func (r *GormCartRepository) DeleteItem(cartID, variantID uint) error {
	return r.db.Where("cart_id = ? AND variant_id = ?", cartID, variantID).Delete(&models.CartItem{}).Error
}

// ClearItems removes every line from a cart.
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
