package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrConfigInvalid    = errors.New("stripe config invalid")
	ErrRequestFailed    = errors.New("stripe request failed")
	ErrResponseInvalid  = errors.New("stripe response invalid")
	ErrSignatureInvalid = errors.New("stripe signature invalid")
)

const (
	defaultAPIBaseURL        = "https://api.stripe.com"
	defaultTimeout           = 12 * time.Second
	defaultWebhookToleranceS = 300
)

var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {},
	"CLP": {},
	"DJF": {},
	"GNF": {},
	"JPY": {},
	"KMF": {},
	"KRW": {},
	"MGA": {},
	"PYG": {},
	"RWF": {},
	"UGX": {},
	"VND": {},
	"VUV": {},
	"XAF": {},
	"XOF": {},
	"XPF": {},
}

// Config holds the checkout bridge settings.
type Config struct {
	SecretKey               string
	WebhookSecret           string
	SuccessURL              string
	CancelURL               string
	APIBaseURL              string
	Currency                string
	WebhookToleranceSeconds int
}

// Normalize trims fields and fills defaults.
func (c *Config) Normalize() {
	c.SecretKey = strings.TrimSpace(c.SecretKey)
	c.WebhookSecret = strings.TrimSpace(c.WebhookSecret)
	c.SuccessURL = strings.TrimSpace(c.SuccessURL)
	c.CancelURL = strings.TrimSpace(c.CancelURL)
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if c.WebhookToleranceSeconds <= 0 {
		c.WebhookToleranceSeconds = defaultWebhookToleranceS
	}
}

// Validate checks the required fields for creating sessions.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret_key is required", ErrConfigInvalid)
	}
	if c.SuccessURL == "" {
		return fmt.Errorf("%w: success_url is required", ErrConfigInvalid)
	}
	if c.CancelURL == "" {
		return fmt.Errorf("%w: cancel_url is required", ErrConfigInvalid)
	}
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("%w: api_base_url is invalid", ErrConfigInvalid)
	}
	return nil
}

// LineItem is one priced row of a checkout session.
type LineItem struct {
	Name       string
	UnitAmount string
	Quantity   int
}

// SessionInput describes the checkout session to create.
type SessionInput struct {
	OrderNumber string
	OrderID     uint
	LineItems   []LineItem
}

// SessionResult is the created checkout session.
type SessionResult struct {
	SessionID string
	URL       string
	Status    string
	Raw       map[string]interface{}
}

// WebhookEvent is a verified, decoded webhook payload.
type WebhookEvent struct {
	EventID     string
	EventType   string
	SessionID   string
	OrderID     uint
	OrderNumber string
	PaymentPaid bool
	Raw         map[string]interface{}
}

// CreateCheckoutSession creates a hosted checkout session with one priced
// row per order item.
func CreateCheckoutSession(ctx context.Context, cfg *Config, input SessionInput) (*SessionResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	orderNumber := strings.TrimSpace(input.OrderNumber)
	if orderNumber == "" {
		return nil, fmt.Errorf("%w: order_number is required", ErrConfigInvalid)
	}
	if len(input.LineItems) == 0 {
		return nil, fmt.Errorf("%w: line_items is empty", ErrConfigInvalid)
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", cfg.SuccessURL)
	form.Set("cancel_url", cfg.CancelURL)
	form.Set("client_reference_id", orderNumber)
	form.Set("metadata[order_id]", strconv.FormatUint(uint64(input.OrderID), 10))
	form.Set("metadata[order_number]", orderNumber)
	form.Add("payment_method_types[]", "card")
	for i, item := range input.LineItems {
		minor, err := toMinorAmount(item.UnitAmount, cfg.Currency)
		if err != nil {
			return nil, err
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = orderNumber
		}
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.Itoa(quantity))
		form.Set(prefix+"[price_data][currency]", strings.ToLower(cfg.Currency))
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(minor, 10))
		form.Set(prefix+"[price_data][product_data][name]", name)
	}

	respBody, statusCode, err := doFormRequest(ctx, cfg, http.MethodPost, "/v1/checkout/sessions", form)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("%w: create checkout session status %d", ErrResponseInvalid, statusCode)
	}

	raw, err := decodeRawMap(respBody)
	if err != nil {
		return nil, err
	}
	result := &SessionResult{
		Raw:       raw,
		SessionID: strings.TrimSpace(readString(raw, "id")),
		URL:       strings.TrimSpace(readString(raw, "url")),
		Status:    strings.TrimSpace(readString(raw, "status")),
	}
	if result.SessionID == "" || result.URL == "" {
		return nil, fmt.Errorf("%w: missing session id or url", ErrResponseInvalid)
	}
	return result, nil
}

// VerifyAndParseWebhook checks the Stripe-Signature header against the body
// and decodes the event.
func VerifyAndParseWebhook(cfg *Config, signatureHeader string, body []byte, now time.Time) (*WebhookEvent, error) {
	if cfg == nil || cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("%w: webhook_secret is required", ErrConfigInvalid)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: body is empty", ErrResponseInvalid)
	}
	if now.IsZero() {
		now = time.Now()
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return nil, fmt.Errorf("%w: Stripe-Signature is required", ErrSignatureInvalid)
	}
	timestamp, signatures, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return nil, err
	}
	if cfg.WebhookToleranceSeconds > 0 {
		delta := math.Abs(float64(now.Unix() - timestamp))
		if delta > float64(cfg.WebhookToleranceSeconds) {
			return nil, fmt.Errorf("%w: timestamp outside tolerance", ErrSignatureInvalid)
		}
	}

	expected := computeSignature(cfg.WebhookSecret, timestamp, body)
	matched := false
	for _, sig := range signatures {
		if hmac.Equal([]byte(strings.ToLower(sig)), []byte(expected)) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, fmt.Errorf("%w: verify failed", ErrSignatureInvalid)
	}

	eventRaw, err := decodeRawMap(body)
	if err != nil {
		return nil, err
	}
	eventType := strings.TrimSpace(readString(eventRaw, "type"))
	if eventType == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrResponseInvalid)
	}
	dataRaw, ok := eventRaw["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing data object", ErrResponseInvalid)
	}
	objectRaw, ok := dataRaw["object"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing event object", ErrResponseInvalid)
	}

	metadata := readMap(objectRaw, "metadata")
	event := &WebhookEvent{
		EventID:     strings.TrimSpace(readString(eventRaw, "id")),
		EventType:   eventType,
		SessionID:   strings.TrimSpace(readString(objectRaw, "id")),
		OrderID:     parseOrderID(metadata),
		OrderNumber: strings.TrimSpace(readString(metadata, "order_number")),
		Raw:         eventRaw,
	}
	switch strings.ToLower(eventType) {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		event.PaymentPaid = strings.EqualFold(readString(objectRaw, "payment_status"), "paid") ||
			strings.EqualFold(readString(objectRaw, "payment_status"), "no_payment_required")
	}
	return event, nil
}

// RetrieveSession queries a checkout session's current status.
func RetrieveSession(ctx context.Context, cfg *Config, sessionID string) (*SessionResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrConfigInvalid)
	}
	path := "/v1/checkout/sessions/" + url.PathEscape(sessionID)
	respBody, statusCode, err := doJSONRequest(ctx, cfg, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("%w: query checkout session status %d", ErrResponseInvalid, statusCode)
	}
	raw, err := decodeRawMap(respBody)
	if err != nil {
		return nil, err
	}
	result := &SessionResult{
		Raw:       raw,
		SessionID: strings.TrimSpace(readString(raw, "id")),
		URL:       strings.TrimSpace(readString(raw, "url")),
		Status:    strings.TrimSpace(readString(raw, "payment_status")),
	}
	if result.SessionID == "" {
		return nil, fmt.Errorf("%w: missing checkout session id", ErrResponseInvalid)
	}
	return result, nil
}

func toMinorAmount(amount string, currency string) (int64, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("%w: amount is invalid", ErrConfigInvalid)
	}
	if parsed.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: amount must be greater than zero", ErrConfigInvalid)
	}
	scale := currencyScale(currency)
	minor := parsed.Shift(int32(scale)).Round(0)
	return minor.IntPart(), nil
}

func currencyScale(currency string) int {
	upper := strings.ToUpper(strings.TrimSpace(currency))
	if _, ok := zeroDecimalCurrencies[upper]; ok {
		return 0
	}
	return 2
}

func doFormRequest(ctx context.Context, cfg *Config, method, path string, form url.Values) ([]byte, int, error) {
	endpoint := cfg.APIBaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := (&http.Client{Timeout: defaultTimeout}).Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response failed", ErrResponseInvalid)
	}
	return body, resp.StatusCode, nil
}

func doJSONRequest(ctx context.Context, cfg *Config, method, path string) ([]byte, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := cfg.APIBaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)

	resp, err := (&http.Client{Timeout: defaultTimeout}).Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response failed", ErrResponseInvalid)
	}
	return body, resp.StatusCode, nil
}

func decodeRawMap(body []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode response failed", ErrResponseInvalid)
	}
	return raw, nil
}

func computeSignature(secret string, timestamp int64, body []byte) string {
	payload := strconv.FormatInt(timestamp, 10) + "." + string(body)
	h := hmac.New(sha256.New, []byte(secret))
	_, _ = h.Write([]byte(payload))
	return strings.ToLower(hex.EncodeToString(h.Sum(nil)))
}

func parseSignatureHeader(signatureHeader string) (int64, []string, error) {
	timestamp := int64(0)
	signatures := make([]string, 0)
	for _, part := range strings.Split(signatureHeader, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil || parsed <= 0 {
				return 0, nil, fmt.Errorf("%w: invalid timestamp", ErrSignatureInvalid)
			}
			timestamp = parsed
		case "v1":
			if value != "" {
				signatures = append(signatures, strings.ToLower(value))
			}
		}
	}
	if timestamp <= 0 {
		return 0, nil, fmt.Errorf("%w: timestamp is missing", ErrSignatureInvalid)
	}
	if len(signatures) == 0 {
		return 0, nil, fmt.Errorf("%w: v1 signature is missing", ErrSignatureInvalid)
	}
	return timestamp, signatures, nil
}

func parseOrderID(metadata map[string]interface{}) uint {
	raw := strings.TrimSpace(readString(metadata, "order_id"))
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

func readString(raw map[string]interface{}, key string) string {
	if raw == nil {
		return ""
	}
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return strings.TrimSpace(typed.String())
	case float64:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	default:
		return ""
	}
}

func readMap(raw map[string]interface{}, key string) map[string]interface{} {
	if raw == nil {
		return nil
	}
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}
	mapped, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}
	return mapped
}
