package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/config"
	"github.com/GenghisKhal/assignment3/internal/errs"
	"github.com/GenghisKhal/assignment3/internal/server"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: config.Default(), Logger: &logger}
}

func serve(t *testing.T, handler echo.HandlerFunc) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	e := echo.New()
	global := NewGlobalMiddlewares(newTestServer())
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(RequestID())
	e.GET("/thing", handler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thing", nil))

	var body errs.HTTPError
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandlerRendersHTTPError(t *testing.T) {
	rec, body := serve(t, func(c echo.Context) error {
		return errs.NewNotFoundError("Job not found", true, nil)
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Job not found", body.Message)
	assert.True(t, body.Override)
}

func TestGlobalErrorHandlerMapsDriverErrors(t *testing.T) {
	rec, body := serve(t, func(c echo.Context) error {
		return &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"}
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "A User with this Email already exists", body.Message)
}

func TestGlobalErrorHandlerRouteNotFound(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestRequestID(t *testing.T) {
	t.Run("reuses a sane header", func(t *testing.T) {
		e := echo.New()
		e.Use(RequestID())
		e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, GetRequestID(c)) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an oversized header", func(t *testing.T) {
		e := echo.New()
		e.Use(RequestID())
		e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, GetRequestID(c)) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Len(t, rec.Body.String(), 36)
	})
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}
