// Package errors provides standardized error handling for the pricing service.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeNoAPIKey      ErrorCode = "NO_API_KEY"
	ErrCodeLookupFailed  ErrorCode = "LOOKUP_FAILED"
	ErrCodeProviderError ErrorCode = "PROVIDER_ERROR"
	ErrCodeLookupTimeout ErrorCode = "LOOKUP_TIMEOUT"

	ErrCodeCacheReadFailed  ErrorCode = "CACHE_READ_FAILED"
	ErrCodeCacheWriteFailed ErrorCode = "CACHE_WRITE_FAILED"

	ErrCodeMultiplierLookupFailed ErrorCode = "MULTIPLIER_LOOKUP_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a non-retryable request-shape error.
func NewValidationError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoAPIKeyError signals that a live lookup was attempted without a
// configured provider API key.
func NewNoAPIKeyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoAPIKey,
		Message:   "No API Key Provided",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLookupFailedError creates a retryable external-provider error.
func NewLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLookupFailed,
		Message:   "External search lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderError wraps an error field reported by the search provider
// itself. Provider-reported errors are never cached, so the next call
// retries live.
func NewProviderError(providerMsg string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderError,
		Message:   providerMsg,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheReadError wraps a cache backend read failure. Callers treat it as
// a cache miss.
func NewCacheReadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheReadFailed,
		Message:   "Cache read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheWriteError wraps a best-effort cache write failure.
func NewCacheWriteError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheWriteFailed,
		Message:   "Cache write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMultiplierLookupError wraps a vehicle multiplier store failure.
func NewMultiplierLookupError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMultiplierLookupFailed,
		Message:   "Vehicle multiplier lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Helpers
// ==========================

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == code
}

// GetErrorCategory groups codes for logging and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeValidationFailed:
		return "validation"
	case ErrCodeNoAPIKey, ErrCodeLookupFailed, ErrCodeProviderError, ErrCodeLookupTimeout:
		return "lookup"
	case ErrCodeCacheReadFailed, ErrCodeCacheWriteFailed:
		return "cache"
	case ErrCodeMultiplierLookupFailed:
		return "store"
	default:
		return "internal"
	}
}
