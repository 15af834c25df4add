package domain

import (
	"context"
	"time"
)

// QueryRecord is one past query on a session. Records are append-only and
// immutable once appended; insertion order is chronological order.
type QueryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Category  Category  `json:"category"`
	Question  *string   `json:"question"`
	Answer    string    `json:"answer"`
}

// Session binds one document's extracted text to a growing history of
// analysis queries, keyed by an opaque identifier. Everything except the
// query history is immutable after creation.
type Session struct {
	ID           string        `json:"session_id"`
	CreatedAt    time.Time     `json:"created_at"`
	Filename     string        `json:"filename"`
	DocumentText string        `json:"document_text"`
	Queries      []QueryRecord `json:"queries"`
}

// SessionStore is the in-process session registry. The store owns every
// Session instance; Get returns a snapshot the caller may read freely.
// Sessions live until process termination; there is no expiry or eviction.
type SessionStore interface {
	// Create registers a new session with an empty history and returns its id.
	// A fresh session is created on every call, even for identical documents.
	Create(ctx context.Context, documentText, filename string) string

	// Append records a query on a session and returns the history length
	// after the append. Appending to an unknown id is a tolerated no-op and
	// returns 0.
	Append(ctx context.Context, sessionID string, category Category, question *string, answer string) int

	// Get returns the session for id, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}
