package types

import (
	"errors"
	"fmt"
)

// Error represents an API error
type Error struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Details    map[string]interface{} `json:"details,omitempty"`
	RequestID  string                 `json:"requestId,omitempty"`
	Err        error                  `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("error: %s", e.Code)
}

// Unwrap returns the wrapped sentinel error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches either the wrapped sentinel or another *Error with the same code
func (e *Error) Is(target error) bool {
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code != "" && e.Code == t.Code
}

// FieldError is a single entry of the FreshBooks "errors" array
type FieldError struct {
	Message string `json:"message"`
	ErrNo   int    `json:"errno,omitempty"`
	Field   string `json:"field,omitempty"`
	Object  string `json:"object,omitempty"`
	Value   string `json:"value,omitempty"`
}
