package session

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter is an atomic counter giving each statement a monotonic sequence
// number alongside its UUID.
var seqCounter uint64

// Session is the execution context for a single statement. It exists purely
// for tracing: observer events carry the session ID so a statement's
// lifecycle can be correlated across log sinks.
type Session struct {
	ID        string // unique statement identifier (UUID)
	Seq       uint64 // monotonic statement sequence number
	Active    bool
	StartTime time.Time
}

// New creates a session with a fresh ID.
func New() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Active:    true,
		StartTime: time.Now(),
	}
}

// Close marks the session as inactive.
func (s *Session) Close() {
	s.Active = false
}
