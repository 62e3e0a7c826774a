package public

import (
	"errors"

	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds one service error to its HTTP status and message.
type mappedHandlerError struct {
	target  error
	code    int
	message string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMessage string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, rule.message)
			return
		}
	}
	logger.Errorw("request_failed", "path", c.FullPath(), "error", err)
	response.Error(c, fallbackCode, fallbackMessage)
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrEmailExists, code: response.CodeBadRequest, message: "Email is already registered."},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, message: "Invalid email or password."},
	{target: service.ErrValidation, code: response.CodeBadRequest, message: "Invalid request payload."},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, message: "User not found."},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, message: "Category not found."},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, message: "Product not found."},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, message: "Product variant not found."},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, message: "Product variant not found."},
	{target: service.ErrVariantOutOfStock, code: response.CodeBadRequest, message: "Product variant is out of stock."},
	{target: service.ErrQuantityExceedsStock, code: response.CodeBadRequest, message: "Quantity exceeds available stock."},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, message: "Cart item not found."},
	{target: service.ErrValidation, code: response.CodeBadRequest, message: "Invalid request payload."},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeBadRequest, message: "Cart for User not found."},
	{target: service.ErrOrderEmpty, code: response.CodeBadRequest, message: "No cart item could be placed."},
	{target: service.ErrNoActiveShipmentAddr, code: response.CodeBadRequest, message: "No active shipment address."},
	{target: service.ErrValidation, code: response.CodeBadRequest, message: "Invalid payment method."},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, message: "Order not found."},
	{target: service.ErrOrderNotCancelable, code: response.CodeBadRequest, message: "Order can't be cancelled."},
	{target: service.ErrOrderNotCompletable, code: response.CodeBadRequest, message: "Order is not fully delivered."},
	{target: service.ErrOrderItemNotFound, code: response.CodeNotFound, message: "Order item not found."},
	{target: service.ErrReturnNotAllowed, code: response.CodeBadRequest, message: "Return is not allowed for this item."},
}

var shipmentAddressErrorRules = []mappedHandlerError{
	{target: service.ErrShipmentAddrNotFound, code: response.CodeNotFound, message: "Shipment address not found."},
	{target: service.ErrValidation, code: response.CodeBadRequest, message: "Invalid request payload."},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, message: "Order not found."},
	{target: service.ErrPaymentNotCard, code: response.CodeBadRequest, message: "Order is not a card payment."},
	{target: service.ErrOrderAlreadyPaid, code: response.CodeBadRequest, message: "Order is already paid."},
	{target: service.ErrCheckoutUnavailable, code: response.CodeInternal, message: "Checkout is not configured."},
}
