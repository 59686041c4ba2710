package memory

// Package memory provides in-process adapters for single-instance deployments and tests.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/target/finance-web/internal/domain/auth"
)

// SessionStore keeps sessions in a map guarded by a mutex.
// Expired sessions are dropped lazily on lookup.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
	now      func() time.Time
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domainauth.Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(s.now()) {
		return errors.New("session is expired")
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}

	if sess.Expired(s.now()) {
		s.dropIfExpired(id)
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}
	return sess, nil
}

// dropIfExpired re-reads id under the write lock so a session saved again
// after the read is kept.
func (s *SessionStore) dropIfExpired(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.sessions[id]; ok && cur.Expired(s.now()) {
		delete(s.sessions, id)
	}
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Len reports how many sessions are currently held, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
