package service

import (
	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSummary is the priced view of a cart.
type CartSummary struct {
	Cart        *models.Cart `json:"cart"`
	Subtotal    models.Money `json:"subtotal"`
	DeliveryFee models.Money `json:"delivery_fee"`
	Total       models.Money `json:"total"`
}

// CartService manages the per-customer cart.
type CartService struct {
	carts    repository.CartRepository
	variants repository.ProductVariantRepository
	cfg      *config.Config
}

// NewCartService creates the cart service.
func NewCartService(
	carts repository.CartRepository,
	variants repository.ProductVariantRepository,
	cfg *config.Config,
) *CartService {
	return &CartService{carts: carts, variants: variants, cfg: cfg}
}

// DeliveryFee returns the configured flat fee, zero when unparsable.
func (s *CartService) DeliveryFee() models.Money {
	fee, err := decimal.NewFromString(s.cfg.Order.DeliveryFee)
	if err != nil || fee.IsNegative() {
		return models.Money{}
	}
	return models.NewMoneyFromDecimal(fee)
}

// getOrCreate returns the customer's cart, creating an empty one on first use.
func (s *CartService) getOrCreate(customerID uint) (*models.Cart, error) {
	cart, err := s.carts.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{CustomerID: customerID}
	if err := s.carts.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the priced cart view.
func (s *CartService) GetCart(customerID uint) (*CartSummary, error) {
	cart, err := s.getOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	return s.summarize(cart), nil
}

// summarize prices the cart. Only lines whose variant is still available
// with stock > 0 count toward the subtotal, and the delivery fee applies
// only when at least one line priced.
func (s *CartService) summarize(cart *models.Cart) *CartSummary {
	subtotal := decimal.Zero
	priced := 0
	for _, item := range cart.Items {
		variant := item.Variant
		if variant == nil || !variant.IsAvailable || variant.Stock <= 0 {
			continue
		}
		priced++
		subtotal = subtotal.Add(variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	fee := s.DeliveryFee()
	total := subtotal
	if priced > 0 {
		total = subtotal.Add(fee.Decimal)
	}
	return &CartSummary{
		Cart:        cart,
		Subtotal:    models.NewMoneyFromDecimal(subtotal),
		DeliveryFee: fee,
		Total:       models.NewMoneyFromDecimal(total),
	}
}

// checkStock validates a requested quantity against a variant.
func (s *CartService) checkStock(variantID uint, quantity int) (*models.ProductVariant, error) {
	variant, err := s.variants.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil || !variant.IsAvailable {
		return nil, ErrVariantNotFound
	}
	if variant.Stock <= 0 {
		return nil, ErrVariantOutOfStock
	}
	if quantity > variant.Stock {
		return nil, ErrQuantityExceedsStock
	}
	return variant, nil
}

// AddItem puts a variant in the cart, merging with an existing line.
func (s *CartService) AddItem(customerID, variantID uint, quantity int) (*CartSummary, error) {
	if quantity <= 0 {
		return nil, ErrValidation
	}
	cart, err := s.getOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	existing, err := s.carts.GetItem(cart.ID, variantID)
	if err != nil {
		return nil, err
	}
	requested := quantity
	if existing != nil {
		requested += existing.Quantity
	}
	if _, err := s.checkStock(variantID, requested); err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.carts.UpdateItemQuantity(existing.ID, requested); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{CartID: cart.ID, VariantID: variantID, Quantity: quantity}
		if err := s.carts.CreateItem(item); err != nil {
			return nil, err
		}
	}
	return s.GetCart(customerID)
}

// UpdateItem sets a line's quantity outright. A quantity below one deletes
// the line instead of leaving it at zero.
func (s *CartService) UpdateItem(customerID, variantID uint, quantity int) (*CartSummary, error) {
	cart, err := s.getOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	item, err := s.carts.GetItem(cart.ID, variantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if quantity < 1 {
		if err := s.carts.DeleteItem(cart.ID, variantID); err != nil {
			return nil, err
		}
		return s.GetCart(customerID)
	}
	if _, err := s.checkStock(variantID, quantity); err != nil {
		return nil, err
	}
	if err := s.carts.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.GetCart(customerID)
}

// RemoveItem drops one line.
func (s *CartService) RemoveItem(customerID, variantID uint) (*CartSummary, error) {
	cart, err := s.getOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	item, err := s.carts.GetItem(cart.ID, variantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.carts.DeleteItem(cart.ID, variantID); err != nil {
		return nil, err
	}
	return s.GetCart(customerID)
}

// Clear empties the cart.
func (s *CartService) Clear(customerID uint) error {
	cart, err := s.carts.GetByCustomer(customerID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.carts.ClearItems(cart.ID)
}
