package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses and response messages.
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSellerNotVerified  = errors.New("seller is not verified")
	ErrNotASeller         = errors.New("user is not a seller")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrProductNotFound  = errors.New("product not found")
	ErrNotProductOwner  = errors.New("product belongs to another seller")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrVariantsRequired = errors.New("product needs at least one variant")

	ErrCartNotFound         = errors.New("cart for user not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrVariantOutOfStock    = errors.New("variant is out of stock")
	ErrQuantityExceedsStock = errors.New("quantity exceeds available stock")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderEmpty            = errors.New("no cart item could be placed")
	ErrOrderNotCancelable    = errors.New("order can't be cancelled")
	ErrOrderNotCompletable   = errors.New("order is not fully delivered")
	ErrOrderAlreadyPaid      = errors.New("order is already paid")
	ErrOrderItemNotFound     = errors.New("order item not found")
	ErrInvalidStatus         = errors.New("unknown order item status")
	ErrInvalidPaymentStatus  = errors.New("unknown payment status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrReturnNotAllowed      = errors.New("return not allowed for this item")
	ErrShipmentAddrNotFound  = errors.New("shipment address not found")
	ErrNoActiveShipmentAddr  = errors.New("no active shipment address")
	ErrPaymentNotCard        = errors.New("order is not a card payment")
	ErrCheckoutUnavailable   = errors.New("checkout is not configured")
	ErrWebhookVerification   = errors.New("webhook signature verification failed")
	ErrValidation            = errors.New("validation failed")

	ErrEmailDisabled      = errors.New("email sending is disabled")
	ErrEmailNotConfigured = errors.New("email sender is not configured")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// WrapValidation tags a validator error so handlers can map it to a 400.
func WrapValidation(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
