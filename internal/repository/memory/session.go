package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexjuris/ruling-analyzer/internal/domain"
)

// SessionStore implements domain.SessionStore with a guarded in-process map.
// Sessions live for the lifetime of the process; there is no eviction.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

func (s *SessionStore) Create(ctx context.Context, documentText, filename string) string {
	id := uuid.New().String()
	session := &domain.Session{
		ID:           id,
		CreatedAt:    time.Now().UTC(),
		Filename:     filename,
		DocumentText: documentText,
		Queries:      []domain.QueryRecord{},
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return id
}

func (s *SessionStore) Append(ctx context.Context, sessionID string, category domain.Category, question *string, answer string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		// Appending to an unknown session is tolerated
		return 0
	}

	session.Queries = append(session.Queries, domain.QueryRecord{
		Timestamp: time.Now().UTC(),
		Category:  category,
		Question:  question,
		Answer:    answer,
	})
	return len(session.Queries)
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	// Snapshot so callers never share the live history slice
	snapshot := *session
	snapshot.Queries = make([]domain.QueryRecord, len(session.Queries))
	copy(snapshot.Queries, session.Queries)
	return &snapshot, nil
}

func (s *SessionStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
