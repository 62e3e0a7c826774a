package service

import (
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CategoryInput is the create/update payload.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	SortOrder   int    `json:"sort_order"`
}

// CategoryService handles the admin-managed category tree.
type CategoryService struct {
	categories repository.CategoryRepository
	validate   *validator.Validate
}

// NewCategoryService creates the category service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		categories: categories,
		validate:   validator.New(),
	}
}

// GetByID fetches a category.
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create adds a category; names are unique.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	name := strings.TrimSpace(input.Name)
	existing, err := s.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}
	category := &models.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		SortOrder:   input.SortOrder,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update edits a category.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	existing, err := s.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, ErrCategoryExists
	}
	updates := map[string]interface{}{
		"name":        name,
		"description": strings.TrimSpace(input.Description),
		"sort_order":  input.SortOrder,
	}
	if err := s.categories.Updates(id, updates); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a category.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.categories.Delete(id)
}

// List returns a page of categories.
func (s *CategoryService) List(page, limit int) ([]models.Category, int64, error) {
	return s.categories.List(page, limit)
}
