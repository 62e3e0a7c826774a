package seller

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateStatusRequest carries the next fulfillment status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrderItems returns the seller's order lines, filterable by status.
func (h *Handler) ListOrderItems(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	page, limit := shared.ParsePagination(c)
	items, total, err := h.OrderItemService.ListForSeller(repository.OrderItemListFilter{
		Page:     page,
		Limit:    limit,
		SellerID: uid,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "Order item list failed.")
		return
	}
	response.SuccessWithPage(c, "Order items fetched successfully.", items, response.NewPagination(page, limit, total))
}

// UpdateOrderItemStatus advances one of the seller's items along the
// fulfillment chain.
func (h *Handler) UpdateOrderItemStatus(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	item, err := h.OrderItemService.SellerUpdateStatus(id, uid, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "Status update failed.")
		return
	}
	response.Success(c, "Order item status updated.", item)
}

// ResolveReturn accepts or rejects an initialized return.
func (h *Handler) ResolveReturn(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	item, err := h.OrderItemService.ResolveReturn(id, uid, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "Return update failed.")
		return
	}
	response.Success(c, "Return resolved successfully.", item)
}
