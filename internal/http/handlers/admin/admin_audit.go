package admin

import (
	"strconv"

	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns a page of the write-operation audit trail.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	page, limit := shared.ParsePagination(c)
	filter := repository.AuditLogListFilter{
		Page:   page,
		Limit:  limit,
		Method: c.Query("method"),
		Path:   c.Query("path"),
	}
	if raw := c.Query("actor_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.ActorID = uint(id)
		}
	}
	entries, total, err := h.AuditService.List(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "Audit log list failed.")
		return
	}
	response.SuccessWithPage(c, "Audit logs fetched successfully.", entries, response.NewPagination(page, limit, total))
}
