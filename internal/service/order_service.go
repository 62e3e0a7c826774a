package service

import (
	"strings"
	"time"

	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderNotifier sends post-placement notifications. The queue client
// implements it; a nil notifier disables notifications.
type OrderNotifier interface {
	NotifyOrderConfirmation(orderID uint)
}

// DroppedLine reports a cart line that could not be materialized into the
// order, with the reason it was skipped.
type DroppedLine struct {
	VariantID uint   `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// Drop reasons.
const (
	DropReasonUnavailable = "variant_unavailable"
	DropReasonOutOfStock  = "insufficient_stock"
)

// OrderService handles placement, cancellation and completion.
type OrderService struct {
	orders    repository.OrderRepository
	items     repository.OrderItemRepository
	carts     repository.CartRepository
	variants  repository.ProductVariantRepository
	products  repository.ProductRepository
	addresses repository.ShipmentAddressRepository
	cfg       *config.Config
	notifier  OrderNotifier
}

// NewOrderService creates the order service.
func NewOrderService(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	carts repository.CartRepository,
	variants repository.ProductVariantRepository,
	products repository.ProductRepository,
	addresses repository.ShipmentAddressRepository,
	cfg *config.Config,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		orders:    orders,
		items:     items,
		carts:     carts,
		variants:  variants,
		products:  products,
		addresses: addresses,
		cfg:       cfg,
		notifier:  notifier,
	}
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return "ORD-" + time.Now().Format("20060102") + "-" + suffix
}

func (s *OrderService) deliveryFee() decimal.Decimal {
	fee, err := decimal.NewFromString(s.cfg.Order.DeliveryFee)
	if err != nil || fee.IsNegative() {
		return decimal.Zero
	}
	return fee
}

// CreateOrder materializes the customer's cart into an order. Lines whose
// variant is gone or whose stock reservation fails are skipped and reported
// back; if nothing survives the order is not created. Stock decrements,
// order rows and the cart wipe commit in one transaction.
func (s *OrderService) CreateOrder(customerID uint, paymentMethod string) (*models.Order, []DroppedLine, error) {
	switch paymentMethod {
	case constants.PaymentMethodCOD, constants.PaymentMethodCard:
	default:
		return nil, nil, ErrValidation
	}

	cart, err := s.carts.GetByCustomer(customerID)
	if err != nil {
		return nil, nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, nil, ErrCartNotFound
	}

	address, err := s.addresses.GetActive(customerID)
	if err != nil {
		return nil, nil, err
	}
	if address == nil {
		return nil, nil, ErrNoActiveShipmentAddr
	}

	var dropped []DroppedLine
	var orderID uint
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		variantsTx := s.variants.WithTx(tx)
		productsTx := s.products.WithTx(tx)

		var orderItems []models.OrderItem
		subtotal := decimal.Zero
		for _, line := range cart.Items {
			variant := line.Variant
			if variant == nil || !variant.IsAvailable || variant.Product == nil {
				dropped = append(dropped, DroppedLine{
					VariantID: line.VariantID,
					Quantity:  line.Quantity,
					Reason:    DropReasonUnavailable,
				})
				continue
			}
			affected, err := variantsTx.DecrementStock(variant.ID, line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				dropped = append(dropped, DroppedLine{
					VariantID: line.VariantID,
					Quantity:  line.Quantity,
					Reason:    DropReasonOutOfStock,
				})
				continue
			}
			orderItems = append(orderItems, models.OrderItem{
				VariantID: variant.ID,
				SellerID:  variant.Product.SellerID,
				Quantity:  line.Quantity,
				UnitPrice: variant.Price,
				Status:    constants.OrderItemStatusPending,
			})
			subtotal = subtotal.Add(variant.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))

			if err := productsTx.IncrementSellCount(variant.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		if len(orderItems) == 0 {
			return ErrOrderEmpty
		}

		order := &models.Order{
			OrderNumber:       newOrderNumber(),
			CustomerID:        customerID,
			ShipmentAddressID: address.ID,
			PaymentMethod:     paymentMethod,
			PaymentStatus:     constants.PaymentStatusUnpaid,
			TotalAmount:       models.NewMoneyFromDecimal(subtotal.Add(s.deliveryFee())),
			Items:             orderItems,
		}
		if err := s.orders.WithTx(tx).Create(order); err != nil {
			return err
		}
		orderID = order.ID

		return s.carts.WithTx(tx).ClearItems(cart.ID)
	})
	if err != nil {
		return nil, dropped, err
	}

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, dropped, err
	}

	logger.Infow("order_placed",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"customer_id", customerID,
		"items", len(order.Items),
		"dropped", len(dropped),
		"total", order.TotalAmount.String(),
	)
	if s.notifier != nil {
		s.notifier.NotifyOrderConfirmation(order.ID)
	}
	return order, dropped, nil
}

// GetForCustomer fetches an order scoped to its owner.
func (s *OrderService) GetForCustomer(orderID, customerID uint) (*models.Order, error) {
	order, err := s.orders.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByID fetches an order unscoped (admin).
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns a page of orders.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orders.List(filter)
}

// CancelOrder cancels an order while at least one item is still pending.
// Pending items flip to canceled and their stock is restored; items a
// seller has already started on are left untouched.
func (s *OrderService) CancelOrder(orderID, customerID uint) (*models.Order, error) {
	order, err := s.GetForCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order.IsCanceled || order.IsCompleted {
		return nil, ErrOrderNotCancelable
	}
	var pending []models.OrderItem
	for _, item := range order.Items {
		if item.Status == constants.OrderItemStatusPending {
			pending = append(pending, item)
		}
	}
	if len(pending) == 0 {
		return nil, ErrOrderNotCancelable
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		itemsTx := s.items.WithTx(tx)
		variantsTx := s.variants.WithTx(tx)
		productsTx := s.products.WithTx(tx)
		for _, item := range pending {
			if err := itemsTx.Updates(item.ID, map[string]interface{}{
				"status": constants.OrderItemStatusCanceled,
			}); err != nil {
				return err
			}
			if err := variantsTx.IncrementStock(item.VariantID, item.Quantity); err != nil {
				return err
			}
			if item.Variant != nil {
				if err := productsTx.IncrementSellCount(item.Variant.ProductID, -item.Quantity); err != nil {
					return err
				}
			}
		}
		return s.orders.WithTx(tx).Updates(order.ID, map[string]interface{}{
			"is_canceled": true,
			"canceled_at": now,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_canceled", "order_id", order.ID, "customer_id", customerID, "items", len(pending))
	return s.GetByID(order.ID)
}

// CompleteOrder marks an order completed once every item is delivered.
func (s *OrderService) CompleteOrder(orderID, customerID uint) (*models.Order, error) {
	order, err := s.GetForCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order.IsCanceled {
		return nil, ErrOrderNotCompletable
	}
	if order.IsCompleted {
		return order, nil
	}
	for _, item := range order.Items {
		if item.Status != constants.OrderItemStatusDelivered {
			return nil, ErrOrderNotCompletable
		}
	}
	if err := s.orders.Updates(order.ID, map[string]interface{}{"is_completed": true}); err != nil {
		return nil, err
	}
	return s.GetByID(order.ID)
}

// AttachStripeSession records the checkout session an order is paying through.
func (s *OrderService) AttachStripeSession(orderID uint, sessionID string) error {
	return s.orders.Updates(orderID, map[string]interface{}{"stripe_session_id": sessionID})
}

// MarkPaid flips the payment status after a confirmed payment.
func (s *OrderService) MarkPaid(orderID uint) error {
	return s.orders.Updates(orderID, map[string]interface{}{"payment_status": constants.PaymentStatusPaid})
}

// SetPaymentStatus is the admin correction channel for the payment flag.
func (s *OrderService) SetPaymentStatus(orderID uint, status string) (*models.Order, error) {
	if status != constants.PaymentStatusUnpaid && status != constants.PaymentStatusPaid {
		return nil, ErrInvalidPaymentStatus
	}
	order, err := s.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus != status {
		if err := s.orders.Updates(order.ID, map[string]interface{}{"payment_status": status}); err != nil {
			return nil, err
		}
	}
	return s.GetByID(orderID)
}

// GetByStripeSession resolves the order a webhook event refers to.
func (s *OrderService) GetByStripeSession(sessionID string) (*models.Order, error) {
	order, err := s.orders.GetByStripeSession(sessionID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
