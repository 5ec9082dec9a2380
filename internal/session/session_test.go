package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore()

	sess := s.Create()
	require.NotEmpty(t, sess.ID)

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("s_nope")
	assert.False(t, ok)
}

func TestStore_ExpiresLazily(t *testing.T) {
	s := NewStore()

	now := time.Now()
	s.now = func() time.Time { return now }

	sess := s.Create()

	s.now = func() time.Time { return now.Add(TTL + time.Minute) }

	_, ok := s.Get(sess.ID)
	assert.False(t, ok)

	// Evicted, not just hidden.
	s.mu.RLock()
	_, stillThere := s.m[sess.ID]
	s.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestStore_DistinctIDs(t *testing.T) {
	s := NewStore()

	a := s.Create()
	b := s.Create()
	assert.NotEqual(t, a.ID, b.ID)
}
