package errs

import (
	"net/http"
)

func codeFor(status int, code *string) string {
	if code != nil {
		return *code
	}
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 validation HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Kind:     KindValidation,
		Code:     codeFor(http.StatusBadRequest, code),
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Kind:     KindNotFound,
		Code:     codeFor(http.StatusNotFound, code),
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewConflictError creates a 409 Conflict HTTPError, used for key collisions.
func NewConflictError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Kind:     KindConflict,
		Code:     codeFor(http.StatusConflict, code),
		Message:  message,
		Status:   http.StatusConflict,
		Override: override,
	}
}

// NewStoreError creates an HTTPError for a database failure.
//
// status is usually 500; foreign key violations use 400 since the caller
// referenced something that does not exist.
func NewStoreError(message string, status int, code *string) *HTTPError {
	return &HTTPError{
		Kind:    KindStore,
		Code:    codeFor(status, code),
		Message: message,
		Status:  status,
	}
}

// NewInternalServerError creates a generic 500 store error.
//
// The message is the status text, not the real internal error message.
func NewInternalServerError() *HTTPError {
	return NewStoreError(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError, nil)
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
//
//	return errs.ValidationError(err)
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil).WithCause(err)
}
