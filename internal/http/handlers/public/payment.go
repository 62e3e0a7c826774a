package public

import (
	"errors"
	"io"

	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 1 << 20

// CheckoutSessionRequest identifies the order to pay.
type CheckoutSessionRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// CreateCheckoutSession opens a hosted payment page for an unpaid card order.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	result, err := h.CheckoutService.CreateSession(c.Request.Context(), req.OrderID, uid)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "Checkout session create failed.")
		return
	}
	response.Success(c, "Checkout session created.", result)
}

// StripeWebhook receives provider events. The signature is checked before
// anything else; unverifiable or malformed payloads answer 400, while
// failures applying a verified event are logged and acknowledged so the
// provider does not retry forever. Redelivery of an already-paid order is
// a no-op either way.
func (h *Handler) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		response.BadRequest(c, "Unreadable webhook body.")
		return
	}
	signature := c.GetHeader("Stripe-Signature")

	if err := h.CheckoutService.HandleWebhook(body, signature); err != nil {
		if errors.Is(err, service.ErrWebhookVerification) {
			response.BadRequest(c, "Webhook signature verification failed.")
			return
		}
		logger.Errorw("stripe_webhook_failed", "error", err)
		response.BadRequest(c, "Webhook processing failed.")
		return
	}
	response.Success(c, "Webhook received.", nil)
}
