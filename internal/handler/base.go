package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/GenghisKhal/assignment3/internal/middleware"
	"github.com/GenghisKhal/assignment3/internal/server"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

// Handler holds the shared application dependencies of concrete handlers.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives the decoded payload and
// returns the response body or an error.
type HandlerFunc[Req any, Res any] func(c echo.Context, req *Req) (Res, error)

// ResponseHandler writes a successful result and names it for logs.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest decodes into a fresh payload, runs the endpoint and writes
// the response, logging and tracing both phases. Errors are returned as is
// for the global error handler; the tracing middleware notices them.
func handleRequest[Req any](
	c echo.Context,
	handler func(c echo.Context, req *Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", c.Path())
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", c.Path()).
		Logger()

	req := new(Req)
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().Err(err).Msg("request validation failed")
		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
		}
		return err
	}
	validationDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if txn != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		txn.AddAttribute("handler.status", status)
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
	}

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed endpoint into an echo.HandlerFunc writing JSON with
// status:
//
//	g.POST("/jobs", handler.Handle(h.Handler, h.CreateJob, http.StatusCreated))
func Handle[Req any, Res any](h Handler, handler HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context, req *Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
