package shared

import (
	"strconv"

	"github.com/uniquemj/ecommerce-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID     = "user_id"
	ContextUserEmail  = "user_email"
	ContextUserRole   = "user_role"
	ContextIsVerified = "is_verified"
	ContextRequestID  = "request_id"
)

// GetUserID pulls the authenticated user id from the context; on failure
// it writes the error response and returns false.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		response.Unauthorized(c, "Authentication required.")
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "Authentication required.")
		return 0, false
	}
	return id, true
}

// GetUserRole pulls the authenticated role, empty when unauthenticated.
func GetUserRole(c *gin.Context) string {
	value, exists := c.Get(ContextUserRole)
	if !exists {
		return ""
	}
	role, _ := value.(string)
	return role
}

// ParseIDParam reads a positive uint path parameter; on failure it writes
// the error response and returns false.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}
