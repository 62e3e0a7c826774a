package service

import (
	"context"
	"errors"
	"time"

	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/payment/stripe"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutResult is the hosted payment page handle returned to the client.
type CheckoutResult struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// CheckoutService bridges card orders to the hosted checkout provider and
// consumes its webhooks.
type CheckoutService struct {
	orders    *OrderService
	users     repository.UserRepository
	email     *EmailService
	stripeCfg *stripe.Config
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(orders *OrderService, users repository.UserRepository, email *EmailService, cfg *config.StripeConfig) *CheckoutService {
	stripeCfg := &stripe.Config{
		SecretKey:               cfg.SecretKey,
		WebhookSecret:           cfg.WebhookSecret,
		SuccessURL:              cfg.SuccessURL,
		CancelURL:               cfg.CancelURL,
		APIBaseURL:              cfg.APIBaseURL,
		Currency:                cfg.Currency,
		WebhookToleranceSeconds: cfg.WebhookToleranceSeconds,
	}
	stripeCfg.Normalize()
	return &CheckoutService{
		orders:    orders,
		users:     users,
		email:     email,
		stripeCfg: stripeCfg,
	}
}

// CreateSession opens a checkout session for an unpaid card order. One
// priced row per order item plus a delivery fee row when nonzero.
func (s *CheckoutService) CreateSession(ctx context.Context, orderID, customerID uint) (*CheckoutResult, error) {
	if s.stripeCfg.SecretKey == "" {
		return nil, ErrCheckoutUnavailable
	}
	order, err := s.orders.GetForCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != constants.PaymentMethodCard {
		return nil, ErrPaymentNotCard
	}
	if order.PaymentStatus == constants.PaymentStatusPaid {
		return nil, ErrOrderAlreadyPaid
	}
	if order.IsCanceled {
		return nil, ErrOrderNotFound
	}

	input := stripe.SessionInput{
		OrderNumber: order.OrderNumber,
		OrderID:     order.ID,
	}
	subtotal := decimal.Zero
	for _, item := range order.Items {
		name := "Order item"
		if item.Variant != nil && item.Variant.Product != nil {
			name = item.Variant.Product.Name
		}
		input.LineItems = append(input.LineItems, stripe.LineItem{
			Name:       name,
			UnitAmount: item.UnitPrice.String(),
			Quantity:   item.Quantity,
		})
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if fee := order.TotalAmount.Sub(subtotal); fee.IsPositive() {
		input.LineItems = append(input.LineItems, stripe.LineItem{
			Name:       "Delivery fee",
			UnitAmount: fee.StringFixed(2),
			Quantity:   1,
		})
	}

	session, err := stripe.CreateCheckoutSession(ctx, s.stripeCfg, input)
	if err != nil {
		logger.Errorw("checkout_session_create_failed", "order_id", order.ID, "error", err)
		return nil, err
	}
	if err := s.orders.AttachStripeSession(order.ID, session.SessionID); err != nil {
		return nil, err
	}
	logger.Infow("checkout_session_created", "order_id", order.ID, "session_id", session.SessionID)
	return &CheckoutResult{SessionID: session.SessionID, CheckoutURL: session.URL}, nil
}

// HandleWebhook verifies and applies one provider event. A bad signature
// is reported back so the endpoint can reject the request; failures while
// applying a verified event are logged and swallowed so the provider does
// not retry forever.
func (s *CheckoutService) HandleWebhook(body []byte, signatureHeader string) error {
	event, err := stripe.VerifyAndParseWebhook(s.stripeCfg, signatureHeader, body, time.Now())
	if err != nil {
		if errors.Is(err, stripe.ErrSignatureInvalid) {
			return ErrWebhookVerification
		}
		return err
	}

	if !event.PaymentPaid {
		logger.Infow("checkout_webhook_ignored", "event_type", event.EventType, "event_id", event.EventID)
		return nil
	}

	order, err := s.resolveOrder(event)
	if err != nil {
		logger.Errorw("checkout_webhook_order_lookup_failed",
			"event_id", event.EventID,
			"session_id", event.SessionID,
			"error", err,
		)
		return nil
	}
	if order.PaymentStatus == constants.PaymentStatusPaid {
		return nil
	}
	if err := s.orders.MarkPaid(order.ID); err != nil {
		logger.Errorw("checkout_webhook_mark_paid_failed", "order_id", order.ID, "error", err)
		return nil
	}
	logger.Infow("order_marked_paid", "order_id", order.ID, "session_id", event.SessionID)

	s.sendPaymentConfirmation(order)
	return nil
}

func (s *CheckoutService) resolveOrder(event *stripe.WebhookEvent) (*models.Order, error) {
	if event.OrderID != 0 {
		return s.orders.GetByID(event.OrderID)
	}
	return s.orders.GetByStripeSession(event.SessionID)
}

func (s *CheckoutService) sendPaymentConfirmation(order *models.Order) {
	if s.email == nil {
		return
	}
	customer, err := s.users.GetByID(order.CustomerID)
	if err != nil || customer == nil {
		return
	}
	if err := s.email.SendOrderConfirmation(customer.Email, order); err != nil {
		if !errors.Is(err, ErrEmailDisabled) {
			logger.Warnw("payment_confirmation_email_failed", "order_id", order.ID, "error", err)
		}
	}
}
