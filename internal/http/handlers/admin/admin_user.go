package admin

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListUsers returns a page of users, filterable by role and keyword.
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := shared.ParsePagination(c)
	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:    page,
		Limit:   limit,
		Role:    c.Query("role"),
		Keyword: c.Query("keyword"),
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "User list failed.")
		return
	}
	response.SuccessWithPage(c, "Users fetched successfully.", users, response.NewPagination(page, limit, total))
}

// GetUser returns one user.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "User fetch failed.")
		return
	}
	response.Success(c, "User fetched successfully.", user)
}

// VerifySeller approves a pending seller account.
func (h *Handler) VerifySeller(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.VerifySeller(id)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "Seller verification failed.")
		return
	}
	response.Success(c, "Seller verified successfully.", user)
}
