package admin

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

var userErrorRules = []mappedHandlerError{
	{target: service.ErrUserNotFound, code: response.CodeNotFound, message: "User not found."},
	{target: service.ErrNotASeller, code: response.CodeBadRequest, message: "User is not a seller."},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, message: "Category not found."},
	{target: service.ErrCategoryExists, code: response.CodeBadRequest, message: "Category already exists."},
	{target: service.ErrValidation, code: response.CodeBadRequest, message: "Invalid request payload."},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, message: "Order not found."},
	{target: service.ErrOrderItemNotFound, code: response.CodeNotFound, message: "Order item not found."},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, message: "Unknown order item status."},
	{target: service.ErrInvalidPaymentStatus, code: response.CodeBadRequest, message: "Unknown payment status."},
}
