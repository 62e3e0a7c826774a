package service

import (
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// VariantInput is one sellable SKU in a product payload.
type VariantInput struct {
	Color         string `json:"color" validate:"max=50"`
	Size          string `json:"size" validate:"max=50"`
	Price         string `json:"price" validate:"required"`
	Stock         int    `json:"stock" validate:"gte=0"`
	PackedWeightG int    `json:"packed_weight_g" validate:"gte=0"`
}

// ProductInput is the create payload.
type ProductInput struct {
	CategoryID  uint           `json:"category_id" validate:"required"`
	Name        string         `json:"name" validate:"required,max=200"`
	Description string         `json:"description" validate:"max=2000"`
	Images      []string       `json:"images" validate:"max=10,dive,url"`
	Variants    []VariantInput `json:"variants" validate:"required,min=1,dive"`
}

// ProductUpdateInput is the partial update payload.
type ProductUpdateInput struct {
	CategoryID  *uint     `json:"category_id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	IsActive    *bool     `json:"is_active"`
}

// ProductService handles the seller-owned catalog.
type ProductService struct {
	products   repository.ProductRepository
	variants   repository.ProductVariantRepository
	categories repository.CategoryRepository
	validate   *validator.Validate
}

// NewProductService creates the product service.
func NewProductService(
	products repository.ProductRepository,
	variants repository.ProductVariantRepository,
	categories repository.CategoryRepository,
) *ProductService {
	return &ProductService{
		products:   products,
		variants:   variants,
		categories: categories,
		validate:   validator.New(),
	}
}

// GetByID fetches a product with its variants.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// getOwned fetches a product and checks seller ownership.
func (s *ProductService) getOwned(id, sellerID uint) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, ErrNotProductOwner
	}
	return product, nil
}

func parseVariantInput(input VariantInput) (*models.ProductVariant, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil || price.IsNegative() {
		return nil, ErrValidation
	}
	return &models.ProductVariant{
		Color:         strings.TrimSpace(input.Color),
		Size:          strings.TrimSpace(input.Size),
		Price:         models.NewMoneyFromDecimal(price),
		Stock:         input.Stock,
		IsAvailable:   true,
		PackedWeightG: input.PackedWeightG,
	}, nil
}

// Create adds a product with at least one variant.
func (s *ProductService) Create(sellerID uint, input ProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	category, err := s.categories.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product := &models.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Images:      models.StringArray(input.Images),
		IsActive:    true,
	}
	for _, v := range input.Variants {
		variant, err := parseVariantInput(v)
		if err != nil {
			return nil, err
		}
		product.Variants = append(product.Variants, *variant)
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return s.GetByID(product.ID)
}

// Update applies partial product edits, owner only.
func (s *ProductService) Update(id, sellerID uint, input ProductUpdateInput) (*models.Product, error) {
	if _, err := s.getOwned(id, sellerID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.CategoryID != nil {
		category, err := s.categories.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		updates["category_id"] = *input.CategoryID
	}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Images != nil {
		updates["images"] = models.StringArray(*input.Images)
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) > 0 {
		if err := s.products.Updates(id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete removes a product, owner only.
func (s *ProductService) Delete(id, sellerID uint) error {
	if _, err := s.getOwned(id, sellerID); err != nil {
		return err
	}
	return s.products.Delete(id)
}

// List returns a page of products.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.products.List(filter)
}

// AddVariant adds a SKU to an owned product.
func (s *ProductService) AddVariant(productID, sellerID uint, input VariantInput) (*models.ProductVariant, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	if _, err := s.getOwned(productID, sellerID); err != nil {
		return nil, err
	}
	variant, err := parseVariantInput(input)
	if err != nil {
		return nil, err
	}
	variant.ProductID = productID
	if err := s.variants.Create(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// VariantUpdateInput is the partial SKU update payload.
type VariantUpdateInput struct {
	Color         *string `json:"color"`
	Size          *string `json:"size"`
	Price         *string `json:"price"`
	Stock         *int    `json:"stock"`
	IsAvailable   *bool   `json:"is_available"`
	PackedWeightG *int    `json:"packed_weight_g"`
}

// UpdateVariant applies partial SKU edits, owner only.
func (s *ProductService) UpdateVariant(variantID, sellerID uint, input VariantUpdateInput) (*models.ProductVariant, error) {
	variant, err := s.variants.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrVariantNotFound
	}
	if _, err := s.getOwned(variant.ProductID, sellerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Color != nil {
		updates["color"] = strings.TrimSpace(*input.Color)
	}
	if input.Size != nil {
		updates["size"] = strings.TrimSpace(*input.Size)
	}
	if input.Price != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*input.Price))
		if err != nil || price.IsNegative() {
			return nil, ErrValidation
		}
		updates["price"] = models.NewMoneyFromDecimal(price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrValidation
		}
		updates["stock"] = *input.Stock
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if input.PackedWeightG != nil {
		updates["packed_weight_g"] = *input.PackedWeightG
	}
	if len(updates) > 0 {
		if err := s.variants.Updates(variantID, updates); err != nil {
			return nil, err
		}
	}
	return s.variants.GetByID(variantID)
}

// DeleteVariant removes a SKU, owner only. The last variant of a product
// cannot be removed.
func (s *ProductService) DeleteVariant(variantID, sellerID uint) error {
	variant, err := s.variants.GetByID(variantID)
	if err != nil {
		return err
	}
	if variant == nil {
		return ErrVariantNotFound
	}
	if _, err := s.getOwned(variant.ProductID, sellerID); err != nil {
		return err
	}
	siblings, err := s.variants.ListByProduct(variant.ProductID)
	if err != nil {
		return err
	}
	if len(siblings) <= 1 {
		return ErrVariantsRequired
	}
	return s.variants.Delete(variantID)
}
