package public

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest is the add/update cart line payload.
type CartItemRequest struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CartQuantityRequest updates one line's quantity.
type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart returns the priced cart.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.GetCart(uid)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Cart fetch failed.")
		return
	}
	response.Success(c, "Cart fetched successfully.", summary)
}

// AddCartItem puts a variant in the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	summary, err := h.CartService.AddItem(uid, req.VariantID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Cart update failed.")
		return
	}
	response.Success(c, "Item added to cart.", summary)
}

// UpdateCartItem sets one line's quantity.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	variantID, ok := shared.ParseIDParam(c, "variantId")
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	summary, err := h.CartService.UpdateItem(uid, variantID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Cart update failed.")
		return
	}
	response.Success(c, "Cart item updated.", summary)
}

// RemoveCartItem drops one line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	variantID, ok := shared.ParseIDParam(c, "variantId")
	if !ok {
		return
	}
	summary, err := h.CartService.RemoveItem(uid, variantID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Cart update failed.")
		return
	}
	response.Success(c, "Cart item removed.", summary)
}
