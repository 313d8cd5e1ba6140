package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default FreshBooks API base URL
	DefaultBaseURL = "https://api.freshbooks.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultRequestInterval is the minimum spacing between two outbound requests
	DefaultRequestInterval = 100 * time.Millisecond

	// APIVersion is sent in the Api-Version header on every request
	APIVersion = "alpha"

	// UserAgent is the user agent string
	UserAgent = "freshbooks-go/1.0.0"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when the access token is missing or rejected
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPermissionDenied is returned when the token lacks the required scope
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when FreshBooks rejects the request payload
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRequest is returned for requests rejected before they are sent
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")

	// ErrNetwork is returned when the request never produced an HTTP response
	ErrNetwork = errors.New("network error")
)
