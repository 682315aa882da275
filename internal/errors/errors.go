// Package errors provides custom error types for the Pondo API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Persistence gateway errors. Writes to the record store fall into exactly
// one of these buckets so handlers can decide what the user sees.
var (
	ErrStoreNotConfigured = &AppError{Code: "STORE_NOT_CONFIGURED", Message: "The record store is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrValidationFailed   = &AppError{Code: "VALIDATION_FAILED", Message: "Row failed validation", StatusCode: http.StatusBadRequest}
	ErrSaveTimeout        = &AppError{Code: "SAVE_TIMEOUT", Message: "The save timed out. Check your network connection and try again", StatusCode: http.StatusGatewayTimeout}
	ErrStoreRejected      = &AppError{Code: "STORE_REJECTED", Message: "The record store rejected the operation", StatusCode: http.StatusBadGateway}
	// ErrRequestCancelled is terminal but silent: the caller went away, so
	// nothing is surfaced to anyone.
	ErrRequestCancelled = &AppError{Code: "REQUEST_CANCELLED", Message: "The request was cancelled", StatusCode: 499}
)

// Budget line errors.
var (
	ErrBudgetInputNotFound = &AppError{Code: "BUDGET_INPUT_NOT_FOUND", Message: "Budget input not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound     = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrSameLineTransfer    = &AppError{Code: "SAME_LINE_TRANSFER", Message: "Cannot transfer to the same budget line", StatusCode: http.StatusBadRequest}
)
