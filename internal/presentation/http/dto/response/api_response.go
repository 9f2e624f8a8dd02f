package response

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// APIResponse is the standard envelope for all API responses
type APIResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    interface{}           `json:"data,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
	Meta    *Meta                 `json:"meta,omitempty"`
}

// Meta contains response metadata
type Meta struct {
	Timestamp  string                 `json:"timestamp"`
	RequestID  string                 `json:"request_id,omitempty"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
}

func newMeta(c *gin.Context) *Meta {
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: c.GetString("request_id"),
	}
}

// Success sends a successful response with data
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// OK sends a 200 response
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created sends a 201 response
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// NoContent sends a 204 response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithPagination sends a successful paginated response
func SuccessWithPagination(c *gin.Context, message string, data interface{}, pag *pagination.Pagination) {
	meta := newMeta(c)
	meta.Pagination = pag
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Error sends an error response from any error, mapping AppError codes
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
		Meta:    newMeta(c),
	})
}

// ValidationError sends a 422 with field errors
func ValidationError(c *gin.Context, fieldErrors []apperror.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
		Meta:    newMeta(c),
	})
}
