package repository

import (
	"errors"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the category data access interface.
type CategoryRepository interface {
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Updates(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	List(page, limit int) ([]models.Category, int64, error)
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetByID fetches a category, nil when missing.
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName fetches a category by name, nil when missing.
func (r *GormCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", strings.TrimSpace(name)).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Updates applies a partial update.
func (r *GormCategoryRepository) Updates(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// List returns a page of categories plus the total count.
func (r *GormCategoryRepository) List(page, limit int) ([]models.Category, int64, error) {
	query := r.db.Model(&models.Category{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var categories []models.Category
	if err := applyPagination(query.Order("sort_order asc, id asc"), page, limit).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}
