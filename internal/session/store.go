package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mkerins/ai-friend/internal/domain"
)

// Store is an in-memory, mutex-guarded session store keyed by session ID.
// Sessions are discarded with the process; the conversation log workbook is
// the only durable record.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
	now      func() time.Time
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*domain.Session),
		now:      time.Now,
	}
}

// Create registers a new empty session and returns it
func (s *Store) Create() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &domain.Session{
		ID:        uuid.New(),
		CreatedAt: s.now(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for id, if present
func (s *Store) Get(id uuid.UUID) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Name returns the raw display name as last stored
func (s *Store) Name(id uuid.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return sess.Name, nil
}

// SetName stores the raw display name unmodified. Emptiness is decided by
// trimming at the point of use, not here.
func (s *Store) SetName(id uuid.UUID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.Name = name
	return nil
}

// AppendExchange stamps the current time, appends the exchange at the end of
// the session's history and returns the generated timestamp.
func (s *Store) AppendExchange(id uuid.UUID, question, answer string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return "", domain.ErrSessionNotFound
	}

	ts := s.now().Format(domain.TimestampFormat)
	sess.Exchanges = append(sess.Exchanges, domain.Exchange{
		Question:  question,
		Answer:    answer,
		Timestamp: ts,
	})
	return ts, nil
}

// Exchanges returns a copy of the session's history in insertion order
func (s *Store) Exchanges(id uuid.UUID) ([]domain.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	out := make([]domain.Exchange, len(sess.Exchanges))
	copy(out, sess.Exchanges)
	return out, nil
}
