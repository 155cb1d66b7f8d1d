// Package memstore is an in-process SessionStore for single-node deploys and
// tests; sessions vanish on restart.
package memstore

import (
	"context"
	"sync"

	"aurora_concierge/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func New() *Store {
	return &Store{sessions: map[string]domain.Session{}}
}

func (s *Store) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Put(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *Store) Del(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
