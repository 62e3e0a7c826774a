package public

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the order placement payload.
type CreateOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// OrderCreatedResponse reports the placed order plus any cart lines that
// could not be included.
type OrderCreatedResponse struct {
	Order        *models.Order         `json:"order"`
	DroppedLines []service.DroppedLine `json:"dropped_lines"`
}

// InitReturnRequest carries the customer's return reason.
type InitReturnRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateOrder places an order from the customer's cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	order, dropped, err := h.OrderService.CreateOrder(uid, req.PaymentMethod)
	if err != nil {
		respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "Order placement failed.")
		return
	}
	if dropped == nil {
		dropped = []service.DroppedLine{}
	}
	response.Created(c, "Order placed successfully.", OrderCreatedResponse{
		Order:        order,
		DroppedLines: dropped,
	})
}

// ListOrders returns the customer's orders.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	page, limit := shared.ParsePagination(c)
	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:       page,
		Limit:      limit,
		CustomerID: uid,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Order list failed.")
		return
	}
	response.SuccessWithPage(c, "Orders fetched successfully.", orders, response.NewPagination(page, limit, total))
}

// GetOrder returns one of the customer's orders.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetForCustomer(id, uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Order fetch failed.")
		return
	}
	response.Success(c, "Order fetched successfully.", order)
}

// CancelOrder cancels an order while at least one item is still pending.
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.CancelOrder(id, uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Order cancel failed.")
		return
	}
	response.Success(c, "Order cancelled successfully.", order)
}

// CompleteOrder marks a fully delivered order as completed.
func (h *Handler) CompleteOrder(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.CompleteOrder(id, uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Order complete failed.")
		return
	}
	response.Success(c, "Order completed successfully.", order)
}

// InitReturn opens a return on a delivered order item.
func (h *Handler) InitReturn(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req InitReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	item, err := h.OrderItemService.InitReturn(id, uid, req.Reason)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "Return initialization failed.")
		return
	}
	response.Success(c, "Return initialized successfully.", item)
}
