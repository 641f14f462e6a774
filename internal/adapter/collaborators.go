// Package adapter contains the collaborators the skip-file engine talks to:
// the script registry, the source-map layer, path mapping and the remote
// engine, plus local implementations used by the CLI.
package adapter

import (
	"context"
	"errors"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// ErrUnknownSourceReference is returned when a source reference does not
// belong to any known script.
var ErrUnknownSourceReference = errors.New("unknown source reference")

// ScriptRegistry stores metadata for scripts the engine has reported.
type ScriptRegistry interface {
	// DisplayPathToRealPath strips synthetic prefixes from a client-facing path.
	DisplayPathToRealPath(path m.Path) m.Path

	// SyntheticURLFor resolves a path-less source to its synthetic URL.
	SyntheticURLFor(sourceReference int) (m.Path, error)

	// ScriptByURL looks up a parsed script by its engine-visible URL.
	ScriptByURL(url m.Path) (m.Script, bool)
}

// SourceMapAdapter maps between authored and generated sources.
type SourceMapAdapter interface {
	// GeneratedPathFromAuthoredPath returns false when the path has not been
	// seen yet.
	GeneratedPathFromAuthoredPath(ctx context.Context, path m.Path) (m.Path, bool, error)

	// AuthoredSources lists the authored sources of a generated script in
	// order. It is empty when the script has no source map.
	AuthoredSources(ctx context.Context, generatedPath m.Path) ([]m.Path, error)

	// AuthoredSourceDetails lists where each authored source starts inside
	// the generated script.
	AuthoredSourceDetails(ctx context.Context, generatedPath m.Path) ([]m.SourceDetail, error)
}

// PathTransformer maps client-visible paths to engine-visible targets.
type PathTransformer interface {
	TargetPathFromClientPath(path m.Path) (m.Path, bool)
}

// RemoteEngine issues the two blackboxing commands of the remote engine.
// Implementations return an error when the engine rejects the command.
type RemoteEngine interface {
	SetBlackboxPatterns(ctx context.Context, patterns []string) error
	SetBlackboxedRanges(ctx context.Context, scriptID m.ScriptID, positions []m.Position) error
}
