package seller

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/repository"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the seller's own catalog, including inactive products.
func (h *Handler) ListProducts(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	page, limit := shared.ParsePagination(c)
	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:     page,
		Limit:    limit,
		SellerID: uid,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Product list failed.")
		return
	}
	response.SuccessWithPage(c, "Products fetched successfully.", products, response.NewPagination(page, limit, total))
}

// CreateProduct adds a product with at least one variant.
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	product, err := h.ProductService.Create(uid, req)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Product create failed.")
		return
	}
	response.Created(c, "Product created successfully.", product)
}

// UpdateProduct edits an owned product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.ProductUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	product, err := h.ProductService.Update(id, uid, req)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Product update failed.")
		return
	}
	response.Success(c, "Product updated successfully.", product)
}

// DeleteProduct removes an owned product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id, uid); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Product delete failed.")
		return
	}
	response.Success(c, "Product deleted successfully.", nil)
}

// AddVariant adds a SKU to an owned product.
func (h *Handler) AddVariant(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.VariantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	variant, err := h.ProductService.AddVariant(id, uid, req)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Variant create failed.")
		return
	}
	response.Created(c, "Variant created successfully.", variant)
}

// UpdateVariant edits a SKU of an owned product.
func (h *Handler) UpdateVariant(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.VariantUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	variant, err := h.ProductService.UpdateVariant(id, uid, req)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Variant update failed.")
		return
	}
	response.Success(c, "Variant updated successfully.", variant)
}

// DeleteVariant removes a SKU of an owned product.
func (h *Handler) DeleteVariant(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.DeleteVariant(id, uid); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "Variant delete failed.")
		return
	}
	response.Success(c, "Variant deleted successfully.", nil)
}
