package service

import (
	"errors"
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"gorm.io/gorm"
)

func newOrderItemService(db *gorm.DB) *OrderItemService {
	return NewOrderItemService(
		repository.NewOrderItemRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductVariantRepository(db),
	)
}

func seedOrderItem(t *testing.T, db *gorm.DB, customerID, sellerID, variantID uint, status string, quantity int) *models.OrderItem {
	t.Helper()
	order := &models.Order{
		OrderNumber:       newOrderNumber(),
		CustomerID:        customerID,
		ShipmentAddressID: 1,
		PaymentMethod:     constants.PaymentMethodCOD,
		PaymentStatus:     constants.PaymentStatusUnpaid,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := &models.OrderItem{
		OrderID:   order.ID,
		VariantID: variantID,
		SellerID:  sellerID,
		Quantity:  quantity,
		Status:    status,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}
	return item
}

func TestSellerUpdateStatusSingleStep(t *testing.T) {
	db := newTestDB(t, "item_step")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusPending, 1)

	svc := newOrderItemService(db)
	updated, err := svc.SellerUpdateStatus(item.ID, seller.ID, constants.OrderItemStatusToPack)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if updated.Status != constants.OrderItemStatusToPack {
		t.Fatalf("expected to_pack, got %s", updated.Status)
	}
}

func TestSellerUpdateStatusRejectsSkippedStep(t *testing.T) {
	db := newTestDB(t, "item_skip")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusPending, 1)

	svc := newOrderItemService(db)
	if _, err := svc.SellerUpdateStatus(item.ID, seller.ID, constants.OrderItemStatusShipping); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got: %v", err)
	}
}

func TestSellerUpdateStatusUnknownStatus(t *testing.T) {
	db := newTestDB(t, "item_unknown")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusPending, 1)

	svc := newOrderItemService(db)
	if _, err := svc.SellerUpdateStatus(item.ID, seller.ID, "warehoused"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got: %v", err)
	}
}

func TestSellerUpdateStatusOtherSellersItem(t *testing.T) {
	db := newTestDB(t, "item_foreign")
	seller := seedSeller(t, db)
	intruder := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusPending, 1)

	svc := newOrderItemService(db)
	if _, err := svc.SellerUpdateStatus(item.ID, intruder.ID, constants.OrderItemStatusToPack); !errors.Is(err, ErrOrderItemNotFound) {
		t.Fatalf("expected not found for foreign seller, got: %v", err)
	}
}

func TestInitReturnOnlyAfterDelivery(t *testing.T) {
	db := newTestDB(t, "item_return_init")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	shipping := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusShipping, 1)
	delivered := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusDelivered, 1)

	svc := newOrderItemService(db)
	if _, err := svc.InitReturn(shipping.ID, customer.ID, "wrong size"); !errors.Is(err, ErrReturnNotAllowed) {
		t.Fatalf("expected return not allowed while shipping, got: %v", err)
	}

	updated, err := svc.InitReturn(delivered.ID, customer.ID, "wrong size")
	if err != nil {
		t.Fatalf("init return failed: %v", err)
	}
	if updated.Status != constants.OrderItemStatusReturnInitialized {
		t.Fatalf("expected return-initialized, got %s", updated.Status)
	}
	if updated.ReturnReason != "wrong size" {
		t.Fatalf("expected return reason recorded, got %q", updated.ReturnReason)
	}
}

func TestInitReturnOtherCustomersItem(t *testing.T) {
	db := newTestDB(t, "item_return_foreign")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	intruder := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 5)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusDelivered, 1)

	svc := newOrderItemService(db)
	if _, err := svc.InitReturn(item.ID, intruder.ID, "not mine"); !errors.Is(err, ErrOrderItemNotFound) {
		t.Fatalf("expected not found for foreign customer, got: %v", err)
	}
}

func TestResolveReturnAcceptRestocks(t *testing.T) {
	db := newTestDB(t, "item_return_accept")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 3)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusReturnInitialized, 2)

	svc := newOrderItemService(db)
	updated, err := svc.ResolveReturn(item.ID, seller.ID, constants.OrderItemStatusReturnAccepted)
	if err != nil {
		t.Fatalf("accept return failed: %v", err)
	}
	if updated.Status != constants.OrderItemStatusReturnAccepted {
		t.Fatalf("expected return-accepted, got %s", updated.Status)
	}
	if got := variantStock(t, db, variant.ID); got != 5 {
		t.Fatalf("expected stock restored to 5, got %d", got)
	}
}

func TestResolveReturnRejectLeavesStock(t *testing.T) {
	db := newTestDB(t, "item_return_reject")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 3)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusReturnInitialized, 2)

	svc := newOrderItemService(db)
	updated, err := svc.ResolveReturn(item.ID, seller.ID, constants.OrderItemStatusReturnRejected)
	if err != nil {
		t.Fatalf("reject return failed: %v", err)
	}
	if updated.Status != constants.OrderItemStatusReturnRejected {
		t.Fatalf("expected return-rejected, got %s", updated.Status)
	}
	if got := variantStock(t, db, variant.ID); got != 3 {
		t.Fatalf("expected stock unchanged at 3, got %d", got)
	}
}

func TestResolveReturnRejectsOtherStatuses(t *testing.T) {
	db := newTestDB(t, "item_return_invalid")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 3)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusReturnInitialized, 1)

	svc := newOrderItemService(db)
	if _, err := svc.ResolveReturn(item.ID, seller.ID, constants.OrderItemStatusDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got: %v", err)
	}
}

func TestAdminSetStatusBypassesChain(t *testing.T) {
	db := newTestDB(t, "item_admin_override")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "10.00", 3)
	item := seedOrderItem(t, db, customer.ID, seller.ID, variant.ID, constants.OrderItemStatusPending, 1)

	svc := newOrderItemService(db)
	updated, err := svc.AdminSetStatus(item.ID, constants.OrderItemStatusFailDelivery)
	if err != nil {
		t.Fatalf("admin override failed: %v", err)
	}
	if updated.Status != constants.OrderItemStatusFailDelivery {
		t.Fatalf("expected faildelivery, got %s", updated.Status)
	}

	if _, err := svc.AdminSetStatus(item.ID, "lost"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got: %v", err)
	}
}
