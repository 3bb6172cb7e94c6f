// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		message   string
		retryable bool
	}{
		{"validation", NewValidationError("Invalid itinerary data"), ErrCodeValidationFailed, "Invalid itinerary data", false},
		{"no api key", NewNoAPIKeyError(), ErrCodeNoAPIKey, "No API Key Provided", false},
		{"lookup failed", NewLookupFailedError(errors.New("timeout")), ErrCodeLookupFailed, "External search lookup failed", true},
		{"provider error", NewProviderError("quota exhausted"), ErrCodeProviderError, "quota exhausted", true},
		{"internal", NewInternalError(errors.New("boom")), ErrCodeInternal, "Unexpected error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NewNoAPIKeyError(), ErrCodeNoAPIKey))
	assert.False(t, IsCode(NewNoAPIKeyError(), ErrCodeLookupFailed))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeInternal))
}

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusForCode(ErrCodeValidationFailed))

	for _, code := range []ErrorCode{
		ErrCodeNoAPIKey,
		ErrCodeLookupFailed,
		ErrCodeProviderError,
		ErrCodeCacheReadFailed,
		ErrCodeInternal,
	} {
		assert.Equal(t, http.StatusInternalServerError, StatusForCode(code), "code %s", code)
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "validation", GetErrorCategory(ErrCodeValidationFailed))
	assert.Equal(t, "lookup", GetErrorCategory(ErrCodeProviderError))
	assert.Equal(t, "cache", GetErrorCategory(ErrCodeCacheWriteFailed))
	assert.Equal(t, "store", GetErrorCategory(ErrCodeMultiplierLookupFailed))
	assert.Equal(t, "internal", GetErrorCategory(ErrorCode("SOMETHING_ELSE")))
}

type captureLogger struct {
	fields map[string]interface{}
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) {
	l.fields = fields
}

func TestHandleRequestError_StandardError(t *testing.T) {
	log := &captureLogger{}
	handler := NewErrorHandler(log)

	status, resp := handler.HandleRequestError("req-1", NewValidationError("Invalid itinerary data"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid itinerary data", resp.Error)
	assert.Equal(t, ErrCodeValidationFailed, resp.Code)
	require.NotNil(t, log.fields)
	assert.Equal(t, "req-1", log.fields["requestId"])
}

func TestHandleRequestError_NormalizesPlainErrors(t *testing.T) {
	handler := NewErrorHandler(&captureLogger{})

	status, resp := handler.HandleRequestError("req-2", errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrCodeInternal, resp.Code)
	assert.Equal(t, "something unexpected", resp.Details)
}
