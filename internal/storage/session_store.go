package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRepository defines the contract for session storage.
type SessionRepository interface {
	Create(months int) *Session
	Get(id string) (*Session, bool)
	Delete(id string) bool
	Sweep(idleFor time.Duration) int
	Count() int
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionRepository returns an in-memory SessionRepository. Sessions live
// only as long as the process.
func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a new empty session with a random UUID.
func (r *memorySessionRepository) Create(months int) *Session {
	s := newSession(uuid.NewString(), months, r.now())
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session and marks it as used.
func (r *memorySessionRepository) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.Touch(r.now())
	}
	return s, ok
}

// Delete removes the session and cancels its in-flight fetch runs.
func (r *memorySessionRepository) Delete(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.CancelAll()
	}
	return ok
}

// Sweep deletes sessions idle for longer than idleFor and returns how many
// were removed.
func (r *memorySessionRepository) Sweep(idleFor time.Duration) int {
	cutoff := r.now().Add(-idleFor)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.CancelAll()
	}
	return len(expired)
}

// Count returns the number of live sessions.
func (r *memorySessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
