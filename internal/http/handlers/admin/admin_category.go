package admin

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	category, err := h.CategoryService.Create(req)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "Category create failed.")
		return
	}
	response.Created(c, "Category created successfully.", category)
}

// UpdateCategory edits a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	category, err := h.CategoryService.Update(id, req)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "Category update failed.")
		return
	}
	response.Success(c, "Category updated successfully.", category)
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "Category delete failed.")
		return
	}
	response.Success(c, "Category deleted successfully.", nil)
}
