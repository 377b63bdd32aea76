package generation

import (
	"log/slog"
	"sync"

	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

// Session is the generation the user is currently viewing. It starts at the
// latest generation and only changes through SetCurrent.
type Session struct {
	mu      sync.RWMutex
	current int
}

// NewSession creates a session viewing the latest generation
func NewSession() *Session {
	return &Session{current: Latest}
}

// Current returns the selected generation
func (s *Session) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrent selects gen. Out of range values are rejected and leave the
// session unchanged.
func (s *Session) SetCurrent(gen int) error {
	if !Valid(gen) {
		return errors.InvalidGeneration(gen, Min, Max)
	}

	s.mu.Lock()
	previous := s.current
	s.current = gen
	s.mu.Unlock()

	if previous != gen {
		slog.Debug("generation selected", "from", previous, "to", gen)
	}
	return nil
}

// Effective returns the generation to show an entity introduced in
// introducedIn, which is never earlier than its introduction.
func (s *Session) Effective(introducedIn int) int {
	return Effective(s.Current(), introducedIn)
}
