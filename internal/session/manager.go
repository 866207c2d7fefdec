// Package session ties one cart store and one order lifecycle to each
// visitor. A session is the server-side equivalent of a page load: nothing in
// it is shared with any other session and nothing survives expiry.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oaktable/menu-service/internal/cart"
	"github.com/oaktable/menu-service/internal/order"
)

// Session owns the ordering state for one visitor.
type Session struct {
	ID       string
	Cart     *cart.Store
	Orders   *order.Lifecycle
	lastSeen time.Time
}

// Manager creates, finds, and expires sessions. Expiry happens lazily on
// access; there is no background sweeper touching live session state.
type Manager struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create mints a new session with an empty cart and a fresh lifecycle.
func (m *Manager) Create() *Session {
	store := cart.NewStore()
	s := &Session{
		ID:     uuid.NewString(),
		Cart:   store,
		Orders: order.NewLifecycle(store),
	}

	m.mu.Lock()
	s.lastSeen = m.now()
	m.sessions[s.ID] = s
	m.pruneLocked()
	m.mu.Unlock()
	return s
}

// Get returns the session for id and refreshes its last-use time. Expired or
// unknown ids report false.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = m.now()
	return s, true
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	return len(m.sessions)
}

func (m *Manager) pruneLocked() {
	if m.ttl <= 0 {
		return
	}
	cutoff := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
