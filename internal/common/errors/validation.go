package commonerrors

import (
	"errors"
	"net/http"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a DomainError carrying the failing field(s) of a
// request body.
type ValidationError struct {
	fields  []FieldError
	traceID string
	cause   error
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return e.Message()
	}
	parts := make([]string, len(e.fields))
	for i, f := range e.fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return e.Message() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Code() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Category() ErrorCategory {
	return CategoryValidation
}

func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

func (e *ValidationError) Message() string {
	return "Validation failed"
}

func (e *ValidationError) TraceID() string {
	return e.traceID
}

func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

func (e *ValidationError) WithCause(cause error) DomainError {
	clone := *e
	clone.cause = cause
	return &clone
}

func (e *ValidationError) WithTraceID(traceID string) DomainError {
	clone := *e
	clone.traceID = traceID
	return &clone
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
