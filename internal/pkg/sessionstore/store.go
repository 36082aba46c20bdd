// Package sessionstore keeps live viewer sessions in memory. Sessions are
// deliberately not persisted: a session is one upload-analyze-browse
// round and is discarded when it expires or the process restarts.
package sessionstore

import (
	"sync"
	"time"

	"github.com/presencelab/presence-gateway-go/internal/domain/session"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	ttl      time.Duration
}

// NewStore creates a store that expires sessions idle for longer than ttl.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*session.Session),
		ttl:      ttl,
	}
	go s.cleanup()
	return s
}

func (s *Store) Put(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *Store) Get(id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// cleanup drops sessions that have not been touched within the TTL. The
// sweep interval does not need to be precise; uploads are large and stale
// sessions pin their file bytes.
func (s *Store) cleanup() {
	interval := s.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	for {
		time.Sleep(interval)
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, sess := range s.sessions {
			if sess.LastSeen.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
