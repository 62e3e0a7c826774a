package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/shopspring/decimal"
)

func TestBuildOrderConfirmationHTML(t *testing.T) {
	order := &models.Order{
		OrderNumber:   "ORD-20260901-ABCDEF1234",
		PaymentMethod: constants.PaymentMethodCOD,
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
		Items: []models.OrderItem{
			{
				Quantity:  2,
				UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
				Variant: &models.ProductVariant{
					Product: &models.Product{Name: `Mug <script>alert("x")</script>`},
				},
			},
		},
	}

	body := buildOrderConfirmationHTML(order)

	if !strings.Contains(body, "ORD-20260901-ABCDEF1234") {
		t.Fatalf("expected order number in body: %s", body)
	}
	if !strings.Contains(body, "150.00") {
		t.Fatalf("expected total in body: %s", body)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("product name was not escaped: %s", body)
	}
	if !strings.Contains(body, "Mug &lt;script&gt;") {
		t.Fatalf("expected escaped product name: %s", body)
	}
}

func TestSendOrderConfirmationDisabled(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{})
	order := &models.Order{OrderNumber: "ORD-1"}
	if err := svc.SendOrderConfirmation("user@example.com", order); !errors.Is(err, ErrEmailDisabled) {
		t.Fatalf("expected email disabled, got: %v", err)
	}
}

func TestDirectOrderNotifierTolerates(t *testing.T) {
	db := newTestDB(t, "notifier_direct")
	seller := seedSeller(t, db)
	customer := seedCustomer(t, db)
	variant := seedVariant(t, db, seller.ID, "25.00", 5)
	seedActiveAddress(t, db, customer.ID)
	order := placeOrder(t, db, customer.ID, variant.ID, 1)

	notifier := NewDirectOrderNotifier(
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		NewEmailService(&config.EmailConfig{}),
	)

	// Disabled mail and missing orders are both quiet no-ops.
	if err := notifier.send(order.ID); err != nil {
		t.Fatalf("expected disabled email to be swallowed, got: %v", err)
	}
	if err := notifier.send(9999); err != nil {
		t.Fatalf("expected missing order to be tolerated, got: %v", err)
	}
}
