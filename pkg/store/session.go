package store

import (
	"sync"

	"outfix-be/internal/entity"
)

// Session is the active assistant session state held in memory. The
// conversation log is append-only; the only in-place change is resolving a
// pending placeholder, done by replacement through the conversation package.
type Session struct {
	ID    string `json:"id"`
	Mode  string `json:"mode"`  // "boxes" | "outfits"
	State string `json:"state"` // "ONBOARDING" | "READY"

	Profile  entity.StyleProfile  `json:"profile"`
	Messages []entity.ChatMessage `json:"messages"`

	// Recommendations shown in the side panel, refreshed by the orchestrator.
	Recommendations []entity.Box `json:"recommendations"`

	LastQuery string `json:"last_query"`

	// Style points are credited asynchronously by the events consumer, so
	// access is serialized separately from the request-scoped fields above.
	mu          sync.Mutex
	stylePoints int
}

const (
	StateOnboarding = "ONBOARDING"
	StateReady      = "READY"
)

func NewSession(id, mode string) *Session {
	return &Session{
		ID:          id,
		Mode:        mode,
		State:       StateOnboarding,
		stylePoints: 0,
	}
}

func (s *Session) AddPoints(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stylePoints += n
}

func (s *Session) Points() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stylePoints
}
