package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/errs"
)

func TestHandleErrorMapsPgErrors(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		kind    errs.Kind
		status  int
		code    string
		message string
	}{
		{
			name:    "primary key collision",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_pkey"},
			kind:    errs.KindConflict,
			status:  http.StatusConflict,
			code:    "USER_ALREADY_EXISTS",
			message: "A User with this Id already exists",
		},
		{
			name:    "role key collision",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "caregivers", ConstraintName: "caregivers_pkey"},
			kind:    errs.KindConflict,
			status:  http.StatusConflict,
			code:    "CAREGIVER_ALREADY_EXISTS",
			message: "A Caregiver with this Id already exists",
		},
		{
			name:    "missing referenced member",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "jobs", ConstraintName: "jobs_member_user_id_fkey"},
			kind:    errs.KindStore,
			status:  http.StatusBadRequest,
			code:    "MEMBER_NOT_FOUND",
			message: "The referenced Member does not exist",
		},
		{
			name:    "missing referenced job",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "job_applications", ConstraintName: "job_applications_job_id_fkey"},
			kind:    errs.KindStore,
			status:  http.StatusBadRequest,
			code:    "JOB_NOT_FOUND",
			message: "The referenced Job does not exist",
		},
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "email"},
			kind:    errs.KindValidation,
			status:  http.StatusBadRequest,
			code:    "USER_REQUIRED",
			message: "The Email is required",
		},
		{
			name:    "negative rate",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "caregivers", ColumnName: "hourly_rate"},
			kind:    errs.KindValidation,
			status:  http.StatusBadRequest,
			code:    "CAREGIVER_INVALID",
			message: "The Hourly Rate value does not meet required conditions",
		},
		{
			name:    "address table singular",
			pgErr:   &pgconn.PgError{Code: "22001", TableName: "addresses"},
			kind:    errs.KindValidation,
			status:  http.StatusBadRequest,
			code:    "ADDRESS_INVALID",
			message: "One or more values are too long",
		},
		{
			name:    "unknown sqlstate",
			pgErr:   &pgconn.PgError{Code: "57P01"},
			kind:    errs.KindStore,
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleError(fmt.Errorf("insert: %w", tt.pgErr))

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.kind, httpErr.Kind)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)

			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr), "driver error stays reachable")
		})
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(fmt.Errorf("table:appointments: %w", pgx.ErrNoRows))
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, "Appointment not found", err.Error())

	err = HandleError(pgx.ErrNoRows)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, "Resource not found", err.Error())
}

func TestHandleErrorPassesThrough(t *testing.T) {
	assert.NoError(t, HandleError(nil))

	original := errs.NewNotFoundError("User not found", true, nil)
	assert.Same(t, original, HandleError(original))

	err := HandleError(errors.New("connection reset"))
	assert.ErrorIs(t, err, errs.ErrStore)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, ForeignKeyViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23503"})))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
