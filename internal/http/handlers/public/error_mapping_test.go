package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

func mappedResponse(t *testing.T, err error, rules []mappedHandlerError) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondWithMappedError(c, err, rules, http.StatusInternalServerError, "Request failed.")

	var body struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error envelope failed: %v", err)
	}
	if body.Success {
		t.Fatalf("expected success=false in error envelope")
	}
	return w.Code, body.Message
}

func TestOrderCreateMissingCartIsBadRequest(t *testing.T) {
	code, message := mappedResponse(t, service.ErrCartNotFound, orderCreateErrorRules)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing cart, got %d", code)
	}
	if message != "Cart for User not found." {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestOrderCancelMappings(t *testing.T) {
	code, message := mappedResponse(t, service.ErrOrderNotCancelable, orderErrorRules)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-cancelable order, got %d", code)
	}
	if message != "Order can't be cancelled." {
		t.Fatalf("unexpected message: %q", message)
	}

	code, _ = mappedResponse(t, service.ErrOrderNotFound, orderErrorRules)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing order, got %d", code)
	}
}

func TestUnmappedErrorFallsBack(t *testing.T) {
	code, message := mappedResponse(t, fmt.Errorf("connection reset"), orderErrorRules)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected fallback 500, got %d", code)
	}
	if message != "Request failed." {
		t.Fatalf("expected fallback message, got %q", message)
	}
}
