package service

import (
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/constants"
)

func TestSellerTransitionChain(t *testing.T) {
	chain := []string{
		constants.OrderItemStatusPending,
		constants.OrderItemStatusToPack,
		constants.OrderItemStatusToArrangeShipment,
		constants.OrderItemStatusToHandover,
		constants.OrderItemStatusShipping,
		constants.OrderItemStatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		if !CanSellerTransition(chain[i], chain[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", chain[i], chain[i+1])
		}
	}
	// No skipping, no walking backwards, no leaving delivered.
	if CanSellerTransition(constants.OrderItemStatusPending, constants.OrderItemStatusShipping) {
		t.Fatalf("expected skip to be rejected")
	}
	if CanSellerTransition(constants.OrderItemStatusShipping, constants.OrderItemStatusToPack) {
		t.Fatalf("expected backward move to be rejected")
	}
	if CanSellerTransition(constants.OrderItemStatusDelivered, constants.OrderItemStatusShipping) {
		t.Fatalf("expected delivered to be terminal for sellers")
	}
	if CanSellerTransition(constants.OrderItemStatusPending, constants.OrderItemStatusCanceled) {
		t.Fatalf("expected cancellation to be outside the seller chain")
	}
}

func TestReturnTransitions(t *testing.T) {
	if !CanInitReturn(constants.OrderItemStatusDelivered) {
		t.Fatalf("expected return from delivered to be allowed")
	}
	if CanInitReturn(constants.OrderItemStatusShipping) {
		t.Fatalf("expected return before delivery to be rejected")
	}
	if !CanResolveReturn(constants.OrderItemStatusReturnInitialized, constants.OrderItemStatusReturnAccepted) {
		t.Fatalf("expected return acceptance to be allowed")
	}
	if !CanResolveReturn(constants.OrderItemStatusReturnInitialized, constants.OrderItemStatusReturnRejected) {
		t.Fatalf("expected return rejection to be allowed")
	}
	if CanResolveReturn(constants.OrderItemStatusDelivered, constants.OrderItemStatusReturnAccepted) {
		t.Fatalf("expected resolution without an initialized return to be rejected")
	}
	if CanResolveReturn(constants.OrderItemStatusReturnInitialized, constants.OrderItemStatusDelivered) {
		t.Fatalf("expected resolution to a non-return status to be rejected")
	}
}

func TestIsValidOrderItemStatus(t *testing.T) {
	for status := range validStatuses {
		if !IsValidOrderItemStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	for _, status := range []string{"", "unknown", "Pending", "return_initialized"} {
		if IsValidOrderItemStatus(status) {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}
