package admin

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// OverrideStatusRequest carries the status an admin forces onto an item.
type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders returns a page of all orders.
func (h *Handler) ListOrders(c *gin.Context) {
	page, limit := shared.ParsePagination(c)
	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:          page,
		Limit:         limit,
		PaymentStatus: c.Query("payment_status"),
		OrderNumber:   c.Query("order_number"),
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Order list failed.")
		return
	}
	response.SuccessWithPage(c, "Orders fetched successfully.", orders, response.NewPagination(page, limit, total))
}

// GetOrder returns one order unscoped.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Order fetch failed.")
		return
	}
	response.Success(c, "Order fetched successfully.", order)
}

// UpdatePaymentStatusRequest carries the corrected payment flag.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// UpdateOrderPaymentStatus corrects an order's payment flag, e.g. after an
// out-of-band refund or a confirmed manual payment.
func (h *Handler) UpdateOrderPaymentStatus(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	order, err := h.OrderService.SetPaymentStatus(id, req.PaymentStatus)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Payment status update failed.")
		return
	}
	response.Success(c, "Order payment status updated.", order)
}

// OverrideOrderItemStatus sets an item status directly, bypassing the
// fulfillment chain.
func (h *Handler) OverrideOrderItemStatus(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	item, err := h.OrderItemService.AdminSetStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Status override failed.")
		return
	}
	response.Success(c, "Order item status overridden.", item)
}
