package seller

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

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, message: "Product not found."},
	{target: service.ErrNotProductOwner, code: response.CodeForbidden, message: "Product belongs to another seller."},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, message: "Category not found."},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, message: "Product variant not found."},
	{target: service.ErrVariantsRequired, code: response.CodeBadRequest, message: "Product needs at least one variant."},
	{target: service.ErrValidation, code: response.CodeBadRequest, message: "Invalid request payload."},
}

var orderItemErrorRules = []mappedHandlerError{
	{target: service.ErrOrderItemNotFound, code: response.CodeNotFound, message: "Order item not found."},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, message: "Unknown order item status."},
	{target: service.ErrInvalidTransition, code: response.CodeBadRequest, message: "Status transition not allowed."},
}
