package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id header")
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) { c.Set(shared.ContextUserRole, constants.RoleCustomer) },
		RequireRoles(constants.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	r.GET("/customer-only",
		func(c *gin.Context) { c.Set(shared.ContextUserRole, constants.RoleCustomer) },
		RequireRoles(constants.RoleCustomer),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customer-only", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for matching role, got %d", w.Code)
	}
}

func TestRequireVerifiedSeller(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/unverified",
		func(c *gin.Context) {
			c.Set(shared.ContextUserRole, constants.RoleSeller)
			c.Set(shared.ContextIsVerified, false)
		},
		RequireVerifiedSeller(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	r.GET("/verified",
		func(c *gin.Context) {
			c.Set(shared.ContextUserRole, constants.RoleSeller)
			c.Set(shared.ContextIsVerified, true)
		},
		RequireVerifiedSeller(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unverified", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unverified seller, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/verified", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for verified seller, got %d", w.Code)
	}
}

func TestAuditedMethods(t *testing.T) {
	for _, method := range []string{"POST", "PUT", "PATCH", "DELETE"} {
		if !isAuditedMethod(method) {
			t.Fatalf("expected %s to be audited", method)
		}
	}
	for _, method := range []string{"GET", "HEAD", "OPTIONS"} {
		if isAuditedMethod(method) {
			t.Fatalf("expected %s to be skipped", method)
		}
	}
}

func TestAuditSkipPathsCoverCredentials(t *testing.T) {
	for _, path := range []string{
		"/api/v1/auth/login",
		"/api/v1/auth/register",
		"/api/v1/auth/register/seller",
		"/api/v1/webhook/stripe-webhook",
	} {
		if _, ok := auditSkipPaths[path]; !ok {
			t.Fatalf("expected %s to be excluded from the audit trail", path)
		}
	}
}
