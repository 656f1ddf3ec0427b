// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/pagination"
	"travel_booking_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// DefaultSuccessMessage is used when a handler does not provide one.
const DefaultSuccessMessage = "Operation completed successfully"

const msgInternalError = "Internal server error"

// SuccessResponse is the envelope for single-resource responses.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PaginatedResponse is the envelope for list responses.
type PaginatedResponse struct {
	Success bool            `json:"success"`
	Data    any             `json:"data"`
	Meta    pagination.Meta `json:"meta"`
}

// ErrorResponse is the envelope for failures.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Errors     any    `json:"errors,omitempty"`
}

// Success sends a success envelope with the given status code.
func Success(c *gin.Context, status int, message string, data any) {
	if message == "" {
		message = DefaultSuccessMessage
	}
	c.JSON(status, SuccessResponse{Success: true, Message: message, Data: data})
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// Paginated sends a paginated envelope. A nil slice is still rendered as
// the given value, so callers should pass an empty slice for no rows.
func Paginated(c *gin.Context, data any, meta pagination.Meta) {
	c.JSON(http.StatusOK, PaginatedResponse{Success: true, Data: data, Meta: meta})
}

// Error sends an error envelope with the given status code and message.
func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorResponse{Success: false, Message: message, StatusCode: status, Errors: details})
}

// AbortWithError sends an error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: message, StatusCode: status})
}

// ValidationFailed sends a 400 with per-field validation messages.
func ValidationFailed(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, "Validation failed", validator.Describe(err))
}

// HandleError maps errors to the error envelope. Typed *apperr.Error values
// use their Kind; anything else becomes a 500 without leaking the cause.
// The original error is attached to the gin context for the request logger.
// Returns true if an error was handled.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	_ = c.Error(err)

	if domainErr, ok := apperr.As(err); ok {
		Error(c, domainErr.HTTPStatus(), domainErr.Message, domainErr.Details)
		return true
	}

	Error(c, http.StatusInternalServerError, msgInternalError, nil)
	return true
}
