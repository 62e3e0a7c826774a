package service

import (
	"errors"
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductVariantRepository(db),
		repository.NewProductRepository(db),
		repository.NewShipmentAddressRepository(db),
		newTestConfig(),
		nil,
	)
}

func addCartLine(t *testing.T, db *gorm.DB, customerID, variantID uint, quantity int) {
	t.Helper()
	cart := &models.Cart{CustomerID: customerID}
	if err := db.Where("customer_id = ?", customerID).FirstOrCreate(cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	line := &models.CartItem{CartID: cart.ID, VariantID: variantID, Quantity: quantity}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("create cart line failed: %v", err)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t, "order_empty_cart")
	customer := seedCustomer(t, db)
	seedActiveAddress(t, db, customer.ID)

	svc := newOrderService(db)
	if _, _, err := svc.CreateOrder(customer.ID, constants.PaymentMethodCOD); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected cart not found, got: %v", err)
	}
}

func TestCreateOrderNoActiveAddress(t *testing.T) {
	db := newTestDB(t, "order_no_address")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	addCartLine(t, db, customer.ID, variant.ID, 1)

	svc := newOrderService(db)
	if _, _, err := svc.CreateOrder(customer.ID, constants.PaymentMethodCOD); !errors.Is(err, ErrNoActiveShipmentAddr) {
		t.Fatalf("expected no active address, got: %v", err)
	}
}

func TestCreateOrderDecrementsStockAndClearsCart(t *testing.T) {
	db := newTestDB(t, "order_place")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "25.00", 5)
	seedActiveAddress(t, db, customer.ID)
	addCartLine(t, db, customer.ID, variant.ID, 2)

	svc := newOrderService(db)
	order, dropped, err := svc.CreateOrder(customer.ID, constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if len(dropped) != 0 {
		t.Fatalf("expected no dropped lines, got %d", len(dropped))
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(order.Items))
	}
	if order.Items[0].Status != constants.OrderItemStatusPending {
		t.Fatalf("expected pending item, got %s", order.Items[0].Status)
	}
	if order.Items[0].SellerID != seller.ID {
		t.Fatalf("expected item seller %d, got %d", seller.ID, order.Items[0].SellerID)
	}
	// 2 x 25.00 plus the 100.00 delivery fee.
	if order.TotalAmount.String() != "150.00" {
		t.Fatalf("expected total 150.00, got %s", order.TotalAmount.String())
	}
	if got := variantStock(t, db, variant.ID); got != 3 {
		t.Fatalf("expected stock 3 after placement, got %d", got)
	}

	var product models.Product
	if err := db.First(&product, variant.ProductID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if product.SellCount != 2 {
		t.Fatalf("expected sell count 2, got %d", product.SellCount)
	}

	var lines int64
	db.Model(&models.CartItem{}).Where("variant_id = ?", variant.ID).Count(&lines)
	if lines != 0 {
		t.Fatalf("expected cart to be emptied, got %d lines", lines)
	}
}

func TestCreateOrderDropsUnavailableLines(t *testing.T) {
	db := newTestDB(t, "order_drop_unavailable")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	good := seedVariant(t, db, seller.ID, "10.00", 5)
	gone := seedVariant(t, db, seller.ID, "10.00", 5)
	if err := db.Model(&models.ProductVariant{}).Where("id = ?", gone.ID).Update("is_available", false).Error; err != nil {
		t.Fatalf("disable variant failed: %v", err)
	}
	seedActiveAddress(t, db, customer.ID)
	addCartLine(t, db, customer.ID, good.ID, 1)
	addCartLine(t, db, customer.ID, gone.ID, 1)

	svc := newOrderService(db)
	order, dropped, err := svc.CreateOrder(customer.ID, constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(order.Items))
	}
	if len(dropped) != 1 {
		t.Fatalf("expected 1 dropped line, got %d", len(dropped))
	}
	if dropped[0].VariantID != gone.ID || dropped[0].Reason != DropReasonUnavailable {
		t.Fatalf("unexpected dropped line: %+v", dropped[0])
	}
}

func TestCreateOrderDropsInsufficientStock(t *testing.T) {
	db := newTestDB(t, "order_drop_stock")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 1)
	seedActiveAddress(t, db, customer.ID)
	addCartLine(t, db, customer.ID, variant.ID, 3)

	svc := newOrderService(db)
	_, dropped, err := svc.CreateOrder(customer.ID, constants.PaymentMethodCOD)
	if !errors.Is(err, ErrOrderEmpty) {
		t.Fatalf("expected empty order, got: %v", err)
	}
	if len(dropped) != 1 || dropped[0].Reason != DropReasonOutOfStock {
		t.Fatalf("unexpected dropped lines: %+v", dropped)
	}
	if got := variantStock(t, db, variant.ID); got != 1 {
		t.Fatalf("expected stock untouched at 1, got %d", got)
	}
}

func placeOrder(t *testing.T, db *gorm.DB, customerID, variantID uint, quantity int) *models.Order {
	t.Helper()
	addCartLine(t, db, customerID, variantID, quantity)
	order, _, err := newOrderService(db).CreateOrder(customerID, constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	return order
}

func TestCancelOrderRestocksPendingItemsOnly(t *testing.T) {
	db := newTestDB(t, "order_cancel")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	pendingVariant := seedVariant(t, db, seller.ID, "10.00", 5)
	packedVariant := seedVariant(t, db, seller.ID, "10.00", 5)
	seedActiveAddress(t, db, customer.ID)
	addCartLine(t, db, customer.ID, pendingVariant.ID, 2)
	addCartLine(t, db, customer.ID, packedVariant.ID, 1)

	svc := newOrderService(db)
	order, _, err := svc.CreateOrder(customer.ID, constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if err := db.Model(&models.OrderItem{}).
		Where("order_id = ? AND variant_id = ?", order.ID, packedVariant.ID).
		Update("status", constants.OrderItemStatusToPack).Error; err != nil {
		t.Fatalf("advance item failed: %v", err)
	}

	canceled, err := svc.CancelOrder(order.ID, customer.ID)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if !canceled.IsCanceled || canceled.CanceledAt == nil {
		t.Fatalf("expected canceled order, got %+v", canceled)
	}
	for _, item := range canceled.Items {
		switch item.VariantID {
		case pendingVariant.ID:
			if item.Status != constants.OrderItemStatusCanceled {
				t.Fatalf("expected pending item canceled, got %s", item.Status)
			}
		case packedVariant.ID:
			if item.Status != constants.OrderItemStatusToPack {
				t.Fatalf("expected packed item untouched, got %s", item.Status)
			}
		}
	}
	if got := variantStock(t, db, pendingVariant.ID); got != 5 {
		t.Fatalf("expected pending variant restocked to 5, got %d", got)
	}
	if got := variantStock(t, db, packedVariant.ID); got != 4 {
		t.Fatalf("expected packed variant to stay at 4, got %d", got)
	}
}

func TestCancelOrderWithoutPendingItems(t *testing.T) {
	db := newTestDB(t, "order_cancel_no_pending")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	seedActiveAddress(t, db, customer.ID)
	order := placeOrder(t, db, customer.ID, variant.ID, 1)

	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).
		Update("status", constants.OrderItemStatusToPack).Error; err != nil {
		t.Fatalf("advance items failed: %v", err)
	}

	if _, err := newOrderService(db).CancelOrder(order.ID, customer.ID); !errors.Is(err, ErrOrderNotCancelable) {
		t.Fatalf("expected not cancelable, got: %v", err)
	}
}

func TestCompleteOrderRequiresAllDelivered(t *testing.T) {
	db := newTestDB(t, "order_complete")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	seedActiveAddress(t, db, customer.ID)
	order := placeOrder(t, db, customer.ID, variant.ID, 1)

	svc := newOrderService(db)
	if _, err := svc.CompleteOrder(order.ID, customer.ID); !errors.Is(err, ErrOrderNotCompletable) {
		t.Fatalf("expected not completable while pending, got: %v", err)
	}

	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).
		Update("status", constants.OrderItemStatusDelivered).Error; err != nil {
		t.Fatalf("deliver items failed: %v", err)
	}
	completed, err := svc.CompleteOrder(order.ID, customer.ID)
	if err != nil {
		t.Fatalf("complete order failed: %v", err)
	}
	if !completed.IsCompleted {
		t.Fatalf("expected completed order")
	}
}

func TestCreateOrderInvalidPaymentMethod(t *testing.T) {
	db := newTestDB(t, "order_bad_method")
	customer := seedCustomer(t, db)

	if _, _, err := newOrderService(db).CreateOrder(customer.ID, "barter"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestSetPaymentStatus(t *testing.T) {
	db := newTestDB(t, "order_payment_status")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "25.00", 5)
	seedActiveAddress(t, db, customer.ID)
	order := placeOrder(t, db, customer.ID, variant.ID, 1)
	svc := newOrderService(db)

	updated, err := svc.SetPaymentStatus(order.ID, constants.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("set payment status failed: %v", err)
	}
	if updated.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("expected paid, got %s", updated.PaymentStatus)
	}

	if _, err := svc.SetPaymentStatus(order.ID, "refunded"); !errors.Is(err, ErrInvalidPaymentStatus) {
		t.Fatalf("expected invalid payment status, got: %v", err)
	}
	if _, err := svc.SetPaymentStatus(9999, constants.PaymentStatusPaid); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got: %v", err)
	}
}
