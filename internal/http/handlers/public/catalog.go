package public

import (
	"strconv"

	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCategories returns the category tree for browsing.
func (h *Handler) ListCategories(c *gin.Context) {
	page, limit := shared.ParsePagination(c)
	categories, total, err := h.CategoryService.List(page, limit)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "Category list failed.")
		return
	}
	response.SuccessWithPage(c, "Categories fetched successfully.", categories, response.NewPagination(page, limit, total))
}

// GetCategory returns one category.
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "Category fetch failed.")
		return
	}
	response.Success(c, "Category fetched successfully.", category)
}

// ListProducts returns active products, filterable by category and search.
func (h *Handler) ListProducts(c *gin.Context) {
	page, limit := shared.ParsePagination(c)
	filter := repository.ProductListFilter{
		Page:       page,
		Limit:      limit,
		Search:     c.Query("search"),
		OnlyActive: true,
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "Product list failed.")
		return
	}
	response.SuccessWithPage(c, "Products fetched successfully.", products, response.NewPagination(page, limit, total))
}

// GetProduct returns one product with its variants.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "Product fetch failed.")
		return
	}
	response.Success(c, "Product fetched successfully.", product)
}
