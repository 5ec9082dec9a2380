package cart

import (
	"sync"
	"time"
)

// Store maps session ids to carts. Entries share the session TTL and are
// evicted lazily, mirroring the session store; an expired session's cart is
// unreachable either way because the cookie no longer resolves.
//
// The mutex only keeps the map memory-safe. Two concurrent requests in one
// session read, mutate, and save independently — last write wins, as the
// cart has no cross-request atomicity guarantee.
type Store struct {
	mu  sync.RWMutex
	m   map[string]entry
	ttl time.Duration
	now func() time.Time
}

type entry struct {
	cart      Cart
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		m:   make(map[string]entry),
		ttl: ttl,
		now: time.Now,
	}
}

// GetOrCreate returns a copy of the session's cart, initializing an empty
// one if absent or expired. Idempotent.
func (s *Store) GetOrCreate(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[sessionID]
	if !ok || s.now().After(e.expiresAt) {
		e = entry{cart: New(), expiresAt: s.now().Add(s.ttl)}
		s.m[sessionID] = e
	}

	return copyCart(e.cart)
}

// Save overwrites the session's cart. The expiry window is left as-is: the
// cart lives exactly as long as its session.
func (s *Store) Save(sessionID string, c Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[sessionID]
	if !ok || s.now().After(e.expiresAt) {
		e = entry{expiresAt: s.now().Add(s.ttl)}
	}

	e.cart = copyCart(c)
	s.m[sessionID] = e
}

func copyCart(c Cart) Cart {
	out := Cart{
		Items:      make([]Item, len(c.Items)),
		TotalCents: c.TotalCents,
	}
	copy(out.Items, c.Items)
	return out
}
