package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByKind(t *testing.T) {
	notFound := NewNotFoundError("job not found", true, nil)
	wrapped := fmt.Errorf("loading job: %w", notFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrConflict))
	assert.True(t, errors.Is(wrapped, &HTTPError{}), "kindless target matches any HTTPError")
}

func TestConstructorsSetStatusAndCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"

	tests := []struct {
		name   string
		err    *HTTPError
		kind   Kind
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), KindValidation, http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), KindNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("dup", true, &code), KindConflict, http.StatusConflict, code},
		{"internal", NewInternalServerError(), KindStore, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestErrorIncludesFieldErrors(t *testing.T) {
	err := NewBadRequestError("Validation failed", true, nil, []FieldError{
		{Field: "email", Error: "is required"},
		{Field: "hourly_rate", Error: "must be at least 0"},
	})

	assert.Equal(t, "Validation failed: email is required; hourly_rate must be at least 0", err.Error())
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalServerError().WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStore)
}
