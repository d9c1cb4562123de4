package middleware

import (
	"github.com/GenghisKhal/assignment3/internal/server"
)

// Middlewares groups the middleware components built from the application
// container, so router setup constructs each of them once.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, the body
	// limit and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing is a no-op unless New Relic is configured.
	Tracing *TracingMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
	}
}
