// Package handler is the HTTP layer after the router.
//
// Each endpoint receives a payload decoded and validated by the validation
// package from path parameters, query parameters and form fields, calls a
// repository or service, and returns JSON.
package handler
