package stripe

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func webhookBody(t *testing.T, eventType, paymentStatus string) []byte {
	t.Helper()
	payload := map[string]interface{}{
		"id":   "evt_test_1",
		"type": eventType,
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"object":         "checkout.session",
				"id":             "cs_test_123",
				"payment_status": paymentStatus,
				"currency":       "usd",
				"amount_total":   15000,
				"metadata": map[string]interface{}{
					"order_id":     "42",
					"order_number": "ORD-20260901-ABCDEF1234",
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return body
}

func TestVerifyAndParseWebhookCheckoutCompleted(t *testing.T) {
	now := time.Unix(1760000000, 0)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	body := webhookBody(t, "checkout.session.completed", "paid")
	sig := computeSignature(cfg.WebhookSecret, now.Unix(), body)

	event, err := VerifyAndParseWebhook(cfg, "t=1760000000,v1="+sig, body, now)
	if err != nil {
		t.Fatalf("verify and parse webhook failed: %v", err)
	}
	if event.EventType != "checkout.session.completed" {
		t.Fatalf("unexpected event type: %s", event.EventType)
	}
	if event.SessionID != "cs_test_123" {
		t.Fatalf("unexpected session id: %s", event.SessionID)
	}
	if event.OrderID != 42 {
		t.Fatalf("unexpected order id: %d", event.OrderID)
	}
	if event.OrderNumber != "ORD-20260901-ABCDEF1234" {
		t.Fatalf("unexpected order number: %s", event.OrderNumber)
	}
	if !event.PaymentPaid {
		t.Fatalf("expected paid event")
	}
}

func TestVerifyAndParseWebhookUnpaidSession(t *testing.T) {
	now := time.Unix(1760000000, 0)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	body := webhookBody(t, "checkout.session.completed", "unpaid")
	sig := computeSignature(cfg.WebhookSecret, now.Unix(), body)

	event, err := VerifyAndParseWebhook(cfg, "t=1760000000,v1="+sig, body, now)
	if err != nil {
		t.Fatalf("verify and parse webhook failed: %v", err)
	}
	if event.PaymentPaid {
		t.Fatalf("expected unpaid event")
	}
}

func TestVerifyAndParseWebhookInvalidSignature(t *testing.T) {
	now := time.Unix(1760000000, 0)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	body := webhookBody(t, "checkout.session.completed", "paid")

	_, err := VerifyAndParseWebhook(cfg, "t=1760000000,v1=deadbeef", body, now)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected signature error, got: %v", err)
	}
}

func TestVerifyAndParseWebhookTimestampOutsideTolerance(t *testing.T) {
	signedAt := time.Unix(1760000000, 0)
	now := signedAt.Add(time.Hour)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	body := webhookBody(t, "checkout.session.completed", "paid")
	sig := computeSignature(cfg.WebhookSecret, signedAt.Unix(), body)

	_, err := VerifyAndParseWebhook(cfg, "t=1760000000,v1="+sig, body, now)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected tolerance error, got: %v", err)
	}
}

func TestConfigNormalizeAndValidate(t *testing.T) {
	cfg := &Config{
		SecretKey:  " sk_test_123 ",
		SuccessURL: "https://example.com/checkout/success",
		CancelURL:  "https://example.com/checkout/cancel",
	}
	cfg.Normalize()
	if cfg.SecretKey != "sk_test_123" {
		t.Fatalf("unexpected secret key: %q", cfg.SecretKey)
	}
	if cfg.APIBaseURL == "" {
		t.Fatalf("expected default api base url")
	}
	if cfg.Currency == "" {
		t.Fatalf("expected default currency")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	missing := &Config{SuccessURL: "https://example.com/s", CancelURL: "https://example.com/c"}
	missing.Normalize()
	if err := missing.Validate(); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected config invalid, got: %v", err)
	}
}

func TestToMinorAmount(t *testing.T) {
	got, err := toMinorAmount("25.00", "usd")
	if err != nil {
		t.Fatalf("to minor amount failed: %v", err)
	}
	if got != 2500 {
		t.Fatalf("expected 2500, got %d", got)
	}

	got, err = toMinorAmount("150", "jpy")
	if err != nil {
		t.Fatalf("to minor amount failed: %v", err)
	}
	if got != 150 {
		t.Fatalf("expected 150 for zero-decimal currency, got %d", got)
	}

	if _, err := toMinorAmount("0", "usd"); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
