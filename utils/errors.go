package utils

import "errors"

// Error kinds crossing component boundaries. Every external-call failure is
// converted into one of these before it leaves the pipeline; raw transport
// errors never reach a caller.
const (
	ErrInvalidInput       = "INVALID_INPUT"
	ErrQuotaExceeded      = "QUOTA_EXCEEDED"
	ErrTransport          = "TRANSPORT_ERROR"
	ErrExtractionFailure  = "EXTRACTION_FAILURE"
	ErrModelRejectedInput = "MODEL_REJECTED_INPUT"
	ErrNotFound           = "NOT_FOUND"
	ErrInvalidIndex       = "INVALID_INDEX"
)

// AppError is the structured error handed to callers. Raw carries enough
// diagnostic text (model output, response body) to reproduce transport and
// extraction failures without calling the live service again.
type AppError struct {
	Kind    string
	Message string
	Raw     string
	Data    map[string]interface{}
}

func (e *AppError) Error() string {
	return e.Kind + ": " + e.Message
}

func NewAppError(kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// WithRaw attaches diagnostic text and returns the same error for chaining.
func (e *AppError) WithRaw(raw string) *AppError {
	e.Raw = raw
	return e
}

// ErrKind returns the kind of an AppError, or "" for any other error.
func ErrKind(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
