package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standard success envelope.
type Response struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// PageResponse is the success envelope for paginated lists.
type PageResponse struct {
	Message        string      `json:"message"`
	Success        bool        `json:"success"`
	Data           interface{} `json:"data"`
	PaginationData Pagination  `json:"pagination_data"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Message string   `json:"message"`
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// Pagination describes a 1-indexed page window.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination computes total_pages from a count.
func NewPagination(page, limit int, totalItems int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Success sends the success envelope.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Message: message,
		Success: true,
		Data:    data,
	})
}

// Created sends the success envelope with a 201 status.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Message: message,
		Success: true,
		Data:    data,
	})
}

// SuccessWithPage sends the paginated success envelope.
func SuccessWithPage(c *gin.Context, message string, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageResponse{
		Message:        message,
		Success:        true,
		Data:           data,
		PaginationData: pagination,
	})
}

// Error sends the error envelope with the given HTTP status.
func Error(c *gin.Context, statusCode int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(statusCode, ErrorResponse{
		Message: message,
		Success: false,
		Errors:  errs,
	})
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, message string, errs ...string) {
	Error(c, CodeBadRequest, message, errs...)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context, message string, errs ...string) {
	Error(c, CodeUnauthorized, message, errs...)
}

// Forbidden sends a 403 error envelope.
func Forbidden(c *gin.Context, message string, errs ...string) {
	Error(c, CodeForbidden, message, errs...)
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, message string, errs ...string) {
	Error(c, CodeNotFound, message, errs...)
}
