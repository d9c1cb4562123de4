// Package middleware stores the global echo middleware.
//
// These handle cross-cutting concerns such as request ids, request-scoped
// logging, CORS, New Relic tracing, panic recovery and the rendering of
// every error as a JSON errs.HTTPError.
package middleware
