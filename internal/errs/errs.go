// Package errs defines the error shape shared by the data-access layer,
// the reporting layer and the HTTP boundary.
//
// Every failure that crosses a package boundary is an *HTTPError carrying a
// Kind (validation, not found, conflict, store), a machine-friendly Code, a
// human-readable Message and, for validation failures, a list of FieldErrors.
package errs

// Kind classifies an error independently of how it is rendered.
type Kind string

const (
	// KindValidation marks missing or malformed input.
	KindValidation Kind = "validation"

	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound Kind = "not_found"

	// KindConflict marks a primary-key or unique-key collision.
	KindConflict Kind = "conflict"

	// KindStore marks connectivity or constraint failures surfaced by the database.
	KindStore Kind = "store"
)

// Sentinels for errors.Is checks by kind:
//
//	if errors.Is(err, errs.ErrNotFound) { ... }
var (
	ErrValidation = &HTTPError{Kind: KindValidation}
	ErrNotFound   = &HTTPError{Kind: KindNotFound}
	ErrConflict   = &HTTPError{Kind: KindConflict}
	ErrStore      = &HTTPError{Kind: KindStore}
)
