package repository

import (
	"errors"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// ProductVariantRepository is the variant data access interface. Stock
// mutations are guarded single-statement updates so the stored count can
// never go negative.
type ProductVariantRepository interface {
	GetByID(id uint) (*models.ProductVariant, error)
	Create(variant *models.ProductVariant) error
	Updates(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	ListByProduct(productID uint) ([]models.ProductVariant, error)
	DecrementStock(id uint, quantity int) (int64, error)
	IncrementStock(id uint, quantity int) error
	WithTx(tx *gorm.DB) *GormProductVariantRepository
}

// GormProductVariantRepository is the GORM implementation.
type GormProductVariantRepository struct {
	db *gorm.DB
}

// NewProductVariantRepository creates a variant repository.
func NewProductVariantRepository(db *gorm.DB) *GormProductVariantRepository {
	return &GormProductVariantRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormProductVariantRepository) WithTx(tx *gorm.DB) *GormProductVariantRepository {
	if tx == nil {
		return r
	}
	return &GormProductVariantRepository{db: tx}
}

// GetByID fetches a variant with its product, nil when missing.
func (r *GormProductVariantRepository) GetByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.Preload("Product").First(&variant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// Create inserts a variant.
func (r *GormProductVariantRepository) Create(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}

// Updates applies a partial update.
func (r *GormProductVariantRepository) Updates(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.ProductVariant{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a variant.
func (r *GormProductVariantRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductVariant{}, id).Error
}

// ListByProduct returns all variants of a product.
func (r *GormProductVariantRepository) ListByProduct(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.db.Where("product_id = ?", productID).Order("id asc").Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// DecrementStock decrements stock only when enough remains; the affected
// row count tells the caller whether the reservation took.
func (r *GormProductVariantRepository) DecrementStock(id uint, quantity int) (int64, error) {
	if quantity <= 0 {
		return 0, nil
	}
	result := r.db.Model(&models.ProductVariant{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

// IncrementStock restores stock (cancellation, accepted return).
func (r *GormProductVariantRepository) IncrementStock(id uint, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	return r.db.Model(&models.ProductVariant{}).Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity)).Error
}
