package domain

import (
	"maps"
	"sync"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// StatusMap holds explicit skip decisions per path. Entries come from
// interactive toggles and from inheritance during range resolution; they
// are never removed during a session. Only concrete decisions are stored:
// an absent entry is what Unset means.
type StatusMap struct {
	mu       sync.RWMutex
	statuses map[m.Path]bool
}

func newStatusMap() *StatusMap {
	return &StatusMap{statuses: make(map[m.Path]bool)}
}

// Get returns the explicit decision for path, or Unset.
func (s *StatusMap) Get(path m.Path) m.SkipStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skip, ok := s.statuses[path]
	if !ok {
		return m.Unset
	}

	return m.StatusOf(skip)
}

// Set records an explicit decision, overwriting any earlier one.
func (s *StatusMap) Set(path m.Path, skip bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[path] = skip
}

// Snapshot returns a copy of every explicit decision.
func (s *StatusMap) Snapshot() map[m.Path]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.statuses)
}

// statusResolver combines explicit decisions with the pattern store.
// Explicit decisions always win over static configuration.
type statusResolver struct {
	statuses *StatusMap
	patterns *PatternStore
}

func (r statusResolver) Resolve(path m.Path) m.SkipStatus {
	if status := r.statuses.Get(path); status.IsSet() {
		return status
	}

	if r.patterns.Matches(path) {
		return m.Skip
	}

	return m.Unset
}

func (s *StatusMap) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses = make(map[m.Path]bool)
}
