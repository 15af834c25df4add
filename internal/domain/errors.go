package domain

import "errors"

// Sentinel errors for the failure kinds the service distinguishes. Handlers
// match them with errors.Is and map them to HTTP statuses.
var (
	// ErrDocumentUnreadable marks an upload whose bytes could not be decoded
	// as a text-bearing PDF.
	ErrDocumentUnreadable = errors.New("could not read document")

	// ErrBatchTooLarge rejects a batch over the file cap before any of its
	// documents is processed.
	ErrBatchTooLarge = errors.New("too many files in batch")

	// ErrSessionNotFound reports a lookup for an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrServiceFailure wraps any completion-backend failure. Callers see one
	// uniform error kind carrying a human-readable cause, never a
	// provider-specific shape.
	ErrServiceFailure = errors.New("model completion failed")
)
