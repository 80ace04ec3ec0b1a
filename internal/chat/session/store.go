package session

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"dwed-assistant/internal/chat"
)

const (
	DefaultMaxSessions = 1024
	DefaultTTL         = 2 * time.Hour
)

// Session is one conversation's ordered turn history. Methods are safe
// for concurrent use; turns within a session keep arrival order.
type Session struct {
	mu    sync.Mutex
	turns []chat.Turn
}

// AppendUser records a user turn. The content must be non-empty after
// trimming.
func (s *Session) AppendUser(content string) error {
	if strings.TrimSpace(content) == "" {
		return chat.ErrEmptyMessage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, chat.Turn{Role: chat.RoleUser, Content: content})
	return nil
}

// AppendAssistant records an assistant turn.
func (s *Session) AppendAssistant(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, chat.Turn{Role: chat.RoleAssistant, Content: content})
}

// Snapshot returns a copy of the turn history.
func (s *Session) Snapshot() []chat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chat.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len reports the number of turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Store holds per-session histories in a bounded, TTL-expiring cache.
// Idle sessions age out; the least recently used are evicted when the
// cap is reached.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Session]
}

// NewStore creates a Store. Non-positive maxSessions or ttl fall back
// to the defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Get returns the session for id, creating it when absent.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.cache.Get(id); ok {
		return s
	}
	s := &Session{}
	st.cache.Add(id, s)
	return s
}

// Reset clears the session for id. Resetting an unknown id is a no-op.
func (st *Store) Reset(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cache.Remove(id)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cache.Len()
}
