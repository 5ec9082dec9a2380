// Package session provides server-side sessions keyed by a signed cookie.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const TTL = 24 * time.Hour

type Session struct {
	ID        string
	ExpiresAt time.Time
}

// Store is the in-memory session store. Expired sessions are dropped lazily
// on access; there is no sweeper goroutine. The mutex guards the map for
// memory safety only — concurrent requests on one session are last-write-wins
// at the cart layer.
type Store struct {
	mu  sync.RWMutex
	m   map[string]Session
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		m:   make(map[string]Session),
		now: time.Now,
	}
}

func (s *Store) Create() Session {
	sess := Session{
		ID:        "s_" + uuid.NewString(),
		ExpiresAt: s.now().Add(TTL),
	}

	s.mu.Lock()
	s.m[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session, evicting it first if expired.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.m, id)
		return Session{}, false
	}
	return sess, true
}
