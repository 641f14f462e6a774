// Package domain implements the skip-file engine: which sources are library
// code, and how that decision reaches the remote engine as blackbox
// patterns and per-script ranges.
package domain

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/blackbox/internal/adapter"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// defaultResolveLimit bounds concurrent script resolution in ResolveAll.
const defaultResolveLimit = 8

// Skipper is what the rest of the debugger uses to keep skip state in sync.
type Skipper interface {
	Initialize(ctx context.Context, globs, literalRegexes []string)
	ResolveSkipFiles(ctx context.Context, script m.Script, generatedPath m.Path, sources []m.Path, toggling bool) error
	ToggleSkipStatus(ctx context.Context, req m.ToggleRequest) error
	ShouldSkipSource(path m.Path) m.SkipStatus
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	log          zerolog.Logger
	resolveLimit int
}

// WithLogger sets the logger used for warnings and diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *sessionConfig) {
		c.log = log
	}
}

// WithResolveLimit bounds how many scripts ResolveAll resolves at once.
func WithResolveLimit(limit int) Option {
	return func(c *sessionConfig) {
		c.resolveLimit = limit
	}
}

// Session owns the skip state of one debugging session. Create it when the
// session starts and Close it when the session ends.
type Session struct {
	statuses   *StatusMap
	patterns   *PatternStore
	ranges     *rangeResolver
	toggle     *toggleWorkflow
	resolver   statusResolver
	sourceMaps adapter.SourceMapAdapter
	log        zerolog.Logger
	limit      int

	// toggleMu serialises toggles so a second toggle of the same path sees
	// the complete result of the first.
	toggleMu sync.Mutex
}

var _ Skipper = (*Session)(nil)

// NewSession wires a session to its collaborators.
func NewSession(
	scripts adapter.ScriptRegistry,
	sourceMaps adapter.SourceMapAdapter,
	paths adapter.PathTransformer,
	engine adapter.RemoteEngine,
	options ...Option,
) *Session {
	cfg := sessionConfig{log: zerolog.Nop(), resolveLimit: defaultResolveLimit}
	for _, option := range options {
		option(&cfg)
	}

	remote := newRemoteSync(engine, cfg.log)
	statuses := newStatusMap()
	patterns := newPatternStore(remote, cfg.log)
	resolver := statusResolver{statuses: statuses, patterns: patterns}

	ranges := &rangeResolver{
		resolver:   resolver,
		statuses:   statuses,
		patterns:   patterns,
		sourceMaps: sourceMaps,
		remote:     remote,
		log:        cfg.log,
	}

	return &Session{
		statuses:   statuses,
		patterns:   patterns,
		ranges:     ranges,
		resolver:   resolver,
		sourceMaps: sourceMaps,
		log:        cfg.log,
		limit:      cfg.resolveLimit,
		toggle: &toggleWorkflow{
			resolver:   resolver,
			statuses:   statuses,
			patterns:   patterns,
			ranges:     ranges,
			scripts:    scripts,
			sourceMaps: sourceMaps,
			paths:      paths,
			log:        cfg.log,
		},
	}
}

// Initialize loads the static skipFiles globs and regexes of the session.
func (s *Session) Initialize(ctx context.Context, globs, literalRegexes []string) {
	s.patterns.Initialize(ctx, globs, literalRegexes)
}

// ResolveSkipFiles pushes the blackboxed ranges of a newly parsed script, or
// of a script whose sources were just toggled.
func (s *Session) ResolveSkipFiles(
	ctx context.Context,
	script m.Script,
	generatedPath m.Path,
	sources []m.Path,
	toggling bool,
) error {
	return s.ranges.Resolve(ctx, script, generatedPath, sources, toggling)
}

// ResolveAll resolves a batch of parsed scripts concurrently. The first
// failure cancels the remaining lookups and is returned.
func (s *Session) ResolveAll(ctx context.Context, scripts []m.LoadedScript) error {
	g, ctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}

	s.log.Debug().Int("scripts", len(scripts)).Msg("resolving parsed scripts")

	for _, loaded := range scripts {
		loaded := loaded
		g.Go(func() error {
			sources, err := s.sourceMaps.AuthoredSources(ctx, loaded.Path)
			if err != nil {
				return fmt.Errorf("failed to get authored sources for %s: %w", loaded.Path, err)
			}

			return s.ResolveSkipFiles(ctx, loaded.Script, loaded.Path, sources, false)
		})
	}

	return g.Wait()
}

// ToggleSkipStatus flips the skip status of the requested source.
func (s *Session) ToggleSkipStatus(ctx context.Context, req m.ToggleRequest) error {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	return s.toggle.Toggle(ctx, req)
}

// ShouldSkipSource returns the explicit decision for path if there is one,
// Skip if a pattern matches it, and Unset otherwise.
func (s *Session) ShouldSkipSource(path m.Path) m.SkipStatus {
	return s.resolver.Resolve(path)
}

// Statuses returns a copy of the explicit decisions made so far.
func (s *Session) Statuses() map[m.Path]bool {
	return s.statuses.Snapshot()
}

// Patterns returns the skip patterns as last sent to the engine.
func (s *Session) Patterns() []string {
	return s.patterns.Sources()
}

// Close discards the session's skip state.
func (s *Session) Close() {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	s.statuses.reset()
	s.patterns.reset()
}
