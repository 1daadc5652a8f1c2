package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the structured failure payload surfaced at the request
// boundary: an HTTP status plus a message.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NewNotFoundError(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

func NewForbiddenError(msg string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: msg}
}

func NewConflictError(msg string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: msg}
}

func NewUpstreamError(msg string) *APIError {
	return &APIError{Status: http.StatusBadGateway, Message: msg}
}

func NewTimeoutError(msg string) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Message: msg}
}

// RespondError writes err as the structured failure payload. Errors that
// are not an *APIError map to a plain 500.
func RespondError(c *gin.Context, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		apiErr = &APIError{Status: http.StatusInternalServerError, Message: err.Error()}
	}
	c.JSON(apiErr.Status, gin.H{
		"success": false,
		"status":  apiErr.Status,
		"message": apiErr.Message,
	})
}
