package domain

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// PatternStore owns the ordered list of skip patterns built from
// configuration and from interactive toggles. Any matching pattern marks a
// path as library code; order only matters for what is sent to the engine.
type PatternStore struct {
	mu       sync.RWMutex
	patterns []*pattern
	remote   *remoteSync
	log      zerolog.Logger
}

func newPatternStore(remote *remoteSync, log zerolog.Logger) *PatternStore {
	return &PatternStore{remote: remote, log: log}
}

// Initialize replaces the pattern set with the configured globs and literal
// regexes and pushes it to the engine. Negated globs and regexes that do not
// compile are dropped with a warning.
func (s *PatternStore) Initialize(ctx context.Context, globs, literalRegexes []string) {
	sources := make([]string, 0, len(globs)+len(literalRegexes))

	for _, glob := range globs {
		if isNegatedGlob(glob) {
			s.log.Warn().Str("glob", glob).Msg("skipFiles entries starting with '!' aren't supported and will be ignored")
			continue
		}

		sources = append(sources, globToRegex(glob))
	}

	sources = append(sources, literalRegexes...)

	if len(sources) == 0 {
		return
	}

	compiled := make([]*pattern, 0, len(sources))

	for _, source := range sources {
		p, err := compilePattern(source)
		if err != nil {
			s.log.Warn().Err(err).Msg("ignoring skip pattern")
			continue
		}

		compiled = append(compiled, p)
	}

	if len(compiled) == 0 {
		return
	}

	s.mu.Lock()
	s.patterns = compiled
	wire := s.wireSourcesLocked()
	s.mu.Unlock()

	s.remote.PushPatterns(ctx, wire)
}

// ExcludePath makes every pattern matching path stop matching it, leaving
// all other paths unaffected. The engine is updated only when something
// changed.
func (s *PatternStore) ExcludePath(ctx context.Context, path m.Path) bool {
	s.mu.Lock()

	changed := false

	for _, p := range s.patterns {
		if p.exclude(path) {
			changed = true
		}
	}

	wire := s.wireSourcesLocked()
	s.mu.Unlock()

	if changed {
		s.log.Debug().Str("path", string(path)).Msg("excluded path from skip patterns")
		s.remote.PushPatterns(ctx, wire)
	}

	return changed
}

// IncludePath makes the pattern set match path. Exceptions previously added
// for path are lifted; if there were none and nothing matches path yet, an
// exact pattern for path is appended. The engine is always updated.
func (s *PatternStore) IncludePath(ctx context.Context, path m.Path) bool {
	s.mu.Lock()

	changed := false

	for _, p := range s.patterns {
		if p.include(path) {
			changed = true
		}
	}

	if !changed && !s.matchesLocked(path) {
		s.patterns = append(s.patterns, exactPattern(path))
		changed = true
	}

	wire := s.wireSourcesLocked()
	s.mu.Unlock()

	s.log.Debug().Str("path", string(path)).Bool("changed", changed).Msg("included path in skip patterns")
	s.remote.PushPatterns(ctx, wire)

	return changed
}

// Matches reports whether any pattern matches path.
func (s *PatternStore) Matches(path m.Path) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.matchesLocked(path)
}

// Sources returns the patterns as sent to the engine, in insertion order.
func (s *PatternStore) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wireSourcesLocked()
}

// Len returns the number of stored patterns.
func (s *PatternStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.patterns)
}

func (s *PatternStore) matchesLocked(path m.Path) bool {
	for _, p := range s.patterns {
		if p.matches(path) {
			return true
		}
	}

	return false
}

func (s *PatternStore) wireSourcesLocked() []string {
	sources := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		sources = append(sources, p.wireSource())
	}

	return sources
}

func (s *PatternStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patterns = nil
}
