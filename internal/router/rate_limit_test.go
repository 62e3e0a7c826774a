package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":" User@Example.COM "}`))
	c.Request.RemoteAddr = "10.0.0.1:1234"

	key := KeyByIPAndJSONField("email")(c)
	if key != "user@example.com|10.0.0.1" {
		t.Fatalf("unexpected key: %s", key)
	}

	// The body must still be readable by the handler afterwards.
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		t.Fatalf("body not restored: %v", err)
	}
}

func TestKeyByIPAndJSONFieldFallsBackToIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
	c.Request.RemoteAddr = "10.0.0.2:1234"

	key := KeyByIPAndJSONField("email")(c)
	if key != "10.0.0.2" {
		t.Fatalf("expected IP fallback, got %s", key)
	}
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	rule := RateLimitRule{Prefix: "test", WindowSeconds: 60, MaxRequests: 1}
	r.POST("/login", RateLimitMiddleware(nil, rule, KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("nil client should disable the throttle, got %d", w.Code)
		}
	}
}

func TestToInt64(t *testing.T) {
	if got, ok := toInt64(int64(7)); !ok || got != 7 {
		t.Fatalf("int64 conversion failed: %d %v", got, ok)
	}
	if got, ok := toInt64(float64(3.9)); !ok || got != 3 {
		t.Fatalf("float64 conversion failed: %d %v", got, ok)
	}
	if _, ok := toInt64("7"); ok {
		t.Fatalf("string should not convert")
	}
}
