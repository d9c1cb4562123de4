package errs

import (
	"fmt"
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "hourly_rate", "error": "must be at least 0" }
type FieldError struct {
	// Field is the form key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type.
//
// It implements the `error` interface via Error() and is serialized directly
// to JSON by the global error handler.
// Fields:
//   - Kind: error classification, never rendered.
//   - Code: machine-friendly error code (e.g. "CAREGIVER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Kind     Kind   `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError `json:"errors,omitempty"`

	// cause is the lower-level error this one was built from, if any.
	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field, fe.Error))
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes the underlying driver error to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// A target without a Kind matches any *HTTPError; otherwise kinds must agree.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithCause returns a copy of this HTTPError that wraps cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	cp := *e
	cp.cause = cause
	return &cp
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
