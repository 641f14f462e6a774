package domain

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/blackbox/internal/adapter"
	m "github.com/mouse-blink/blackbox/internal/model"
)

func newTestPatternStore(t *testing.T) (*PatternStore, *adapter.RecordingEngine) {
	t.Helper()

	engine := adapter.NewRecordingEngine(nil)
	remote := newRemoteSync(engine, zerolog.Nop())

	return newPatternStore(remote, zerolog.Nop()), engine
}

func patternCommands(commands []m.Command) [][]string {
	var pushed [][]string

	for _, cmd := range commands {
		if cmd.Kind == m.CommandSetPatterns {
			pushed = append(pushed, cmd.Patterns)
		}
	}

	return pushed
}

func TestPatternStore_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("negated globs are dropped without a push", func(t *testing.T) {
		store, engine := newTestPatternStore(t)

		store.Initialize(ctx, []string{"!foo/**"}, nil)

		assert.Equal(t, 0, store.Len())
		assert.Empty(t, engine.Commands())
	})

	t.Run("empty configuration is a no-op", func(t *testing.T) {
		store, engine := newTestPatternStore(t)

		store.Initialize(ctx, nil, nil)

		assert.Equal(t, 0, store.Len())
		assert.Empty(t, engine.Commands())
	})

	t.Run("globs then literal regexes in order", func(t *testing.T) {
		store, engine := newTestPatternStore(t)

		store.Initialize(ctx, []string{"node_modules/**", "!keep/**"}, []string{`^internal/.*`})

		want := []string{`node_modules[/\\](.*[/\\])?`, `^internal/.*`}
		assert.Equal(t, want, store.Sources())
		assert.Equal(t, [][]string{want}, patternCommands(engine.Commands()))
	})

	t.Run("regexes that do not compile are dropped", func(t *testing.T) {
		store, _ := newTestPatternStore(t)

		store.Initialize(ctx, nil, []string{`(?<=x)y`, `vendor`})

		assert.Equal(t, []string{`vendor`}, store.Sources())
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		store, _ := newTestPatternStore(t)

		store.Initialize(ctx, nil, []string{`vendor\.js$`})

		assert.True(t, store.Matches("/srv/VENDOR.JS"))
		assert.False(t, store.Matches("/srv/app.js"))
	})
}

func TestPatternStore_ExcludePath(t *testing.T) {
	ctx := context.Background()
	excluded := m.Path("/app/node_modules/x.js")
	siblings := []m.Path{
		"/app/node_modules/y.js",
		"/app/node_modules/x.jsx",
		"/other/node_modules/x.js",
		"/app/src/x.js",
	}

	t.Run("only the excluded path stops matching", func(t *testing.T) {
		store, _ := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		before := make(map[m.Path]bool, len(siblings))
		for _, p := range siblings {
			before[p] = store.Matches(p)
		}

		require.True(t, store.ExcludePath(ctx, excluded))

		assert.False(t, store.Matches(excluded))
		assert.False(t, store.Matches(`\app\node_modules\X.js`))

		for _, p := range siblings {
			assert.Equal(t, before[p], store.Matches(p), "verdict changed for %s", p)
		}
	})

	t.Run("second exclude changes nothing", func(t *testing.T) {
		store, engine := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		require.True(t, store.ExcludePath(ctx, excluded))
		after := store.Sources()

		assert.False(t, store.ExcludePath(ctx, excluded))
		assert.Equal(t, after, store.Sources())
		assert.Len(t, patternCommands(engine.Commands()), 2)
	})

	t.Run("path that matches nothing is not pushed", func(t *testing.T) {
		store, engine := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		assert.False(t, store.ExcludePath(ctx, "/app/src/x.js"))
		assert.Len(t, patternCommands(engine.Commands()), 1)
	})

	t.Run("exceptions are sent as a lookahead", func(t *testing.T) {
		store, _ := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		store.ExcludePath(ctx, excluded)

		want := `^(?!(?:[/\\]app[/\\]node_modules[/\\]x\.js)$)(?=[\s\S]*?(?:node_modules[/\\](.*[/\\])?))`
		assert.Equal(t, []string{want}, store.Sources())
	})

	t.Run("every matching pattern is adjusted", func(t *testing.T) {
		store, _ := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, []string{`\.js$`, `^/lib/`})

		require.True(t, store.ExcludePath(ctx, excluded))

		assert.False(t, store.Matches(excluded))
		assert.True(t, store.Matches("/lib/z.js"))
		assert.Equal(t, `^/lib/`, store.Sources()[2])
	})
}

func TestPatternStore_IncludePath(t *testing.T) {
	ctx := context.Background()

	t.Run("appends an exact pattern when nothing matches", func(t *testing.T) {
		store, engine := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		require.True(t, store.IncludePath(ctx, "/app/src/a.js"))

		assert.True(t, store.Matches("/app/src/a.js"))
		assert.False(t, store.Matches("/app/src/b.js"))
		assert.False(t, store.Matches("/app/src/a.jsx"))
		assert.Equal(t, `^[/\\]app[/\\]src[/\\]a\.js$`, store.Sources()[1])
		assert.Len(t, patternCommands(engine.Commands()), 2)
	})

	t.Run("second include changes nothing but still pushes", func(t *testing.T) {
		store, engine := newTestPatternStore(t)

		require.True(t, store.IncludePath(ctx, "/app/src/a.js"))
		after := store.Sources()

		assert.False(t, store.IncludePath(ctx, "/app/src/a.js"))
		assert.Equal(t, after, store.Sources())
		assert.Len(t, patternCommands(engine.Commands()), 2)
	})

	t.Run("lifts an earlier exclusion instead of appending", func(t *testing.T) {
		store, _ := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)
		original := store.Sources()

		store.ExcludePath(ctx, "/app/node_modules/x.js")
		require.True(t, store.IncludePath(ctx, "/app/node_modules/x.js"))

		assert.Equal(t, original, store.Sources())
		assert.True(t, store.Matches("/app/node_modules/x.js"))
	})

	t.Run("path already matched is not duplicated", func(t *testing.T) {
		store, engine := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		assert.False(t, store.IncludePath(ctx, "/app/node_modules/x.js"))
		assert.Equal(t, 1, store.Len())
		assert.Len(t, patternCommands(engine.Commands()), 2)
	})

	t.Run("include then exclude restores every verdict", func(t *testing.T) {
		store, _ := newTestPatternStore(t)
		store.Initialize(ctx, []string{"node_modules/**"}, nil)

		paths := []m.Path{"/app/src/a.js", "/app/src/b.js", "/app/node_modules/x.js"}
		before := make(map[m.Path]bool, len(paths))
		for _, p := range paths {
			before[p] = store.Matches(p)
		}

		store.IncludePath(ctx, "/app/src/a.js")
		store.ExcludePath(ctx, "/app/src/a.js")

		for _, p := range paths {
			assert.Equal(t, before[p], store.Matches(p), "verdict changed for %s", p)
		}
	})
}
