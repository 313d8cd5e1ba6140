package freshbooks

import (
	"errors"

	"github.com/eshaffer321/freshbooks-go/internal/types"
)

// Sentinel errors re-exported from the transport layer so callers can use errors.Is
var (
	ErrNotAuthenticated = types.ErrNotAuthenticated
	ErrPermissionDenied = types.ErrPermissionDenied
	ErrRateLimited      = types.ErrRateLimited
	ErrTimeout          = types.ErrTimeout
	ErrNotFound         = types.ErrNotFound
	ErrValidation       = types.ErrValidation
	ErrInvalidRequest   = types.ErrInvalidRequest
	ErrServerError      = types.ErrServerError
	ErrNetwork          = types.ErrNetwork
)

// Error represents an API error
type Error = types.Error

// FieldError is a single validation failure reported by FreshBooks
type FieldError = types.FieldError

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrPermissionDenied)
}

// IsNotFound checks if the requested resource does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) ||
		errors.Is(err, ErrNetwork) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
