// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"
)

// ErrorHandler maps application errors to HTTP responses with standardized
// logging.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// ErrorResponse is the JSON body returned to API callers on failure.
type ErrorResponse struct {
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`
}

// HandleRequestError normalizes err, logs it, and returns the HTTP status
// and response body to write.
func (h *ErrorHandler) HandleRequestError(requestID string, err error) (int, ErrorResponse) {
	stdErr := h.normalizeError(err)
	status := StatusForCode(stdErr.Code)

	h.logger.Error("request failed", map[string]interface{}{
		"requestId":     requestID,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"status":        status,
	})

	return status, ErrorResponse{
		Error:   stdErr.Message,
		Code:    stdErr.Code,
		Details: stdErr.Details,
	}
}

// StatusForCode maps an error code to an HTTP status. Only request-shape
// errors are the caller's fault; everything else is a 500.
func StatusForCode(code ErrorCode) int {
	if code == ErrCodeValidationFailed {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
