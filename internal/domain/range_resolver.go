package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/blackbox/internal/adapter"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// ErrMalformedDetail is returned when a skip/no-skip transition has no
// source detail with a start position. The source-map layer listed the
// source but cannot say where it begins.
var ErrMalformedDetail = errors.New("authored source has no start position")

// rangeResolver computes the blackboxed ranges of generated scripts.
type rangeResolver struct {
	resolver   statusResolver
	statuses   *StatusMap
	patterns   *PatternStore
	sourceMaps adapter.SourceMapAdapter
	remote     *remoteSync
	log        zerolog.Logger
}

// Resolve pushes the ranges for one generated script. sources are its
// authored sources in order, empty when it has no source map.
func (r *rangeResolver) Resolve(ctx context.Context, script m.Script, generatedPath m.Path, sources []m.Path, toggling bool) error {
	if len(sources) == 0 {
		r.resolveUnmapped(ctx, script, generatedPath)
		return nil
	}

	return r.resolveMapped(ctx, script, generatedPath, sources, toggling)
}

func (r *rangeResolver) resolveMapped(
	ctx context.Context,
	script m.Script,
	generatedPath m.Path,
	sources []m.Path,
	toggling bool,
) error {
	parent := r.resolver.Resolve(script.URL)
	inLibrary := parent.Bool()
	details := detailLookup{sourceMaps: r.sourceMaps, generatedPath: generatedPath}

	var positions []m.Position

	for _, source := range sources {
		status := r.resolver.Resolve(source)
		if !status.IsSet() {
			status = parent
			// Inherit the parent's status; only concrete values are recorded.
			if parent.IsSet() {
				r.statuses.Set(source, parent.Bool())
			}
		}

		if status.Bool() == inLibrary {
			continue
		}

		start, err := details.startOf(ctx, source)
		if err != nil {
			return err
		}

		positions = append(positions, start)
		inLibrary = !inLibrary
	}

	if len(positions) == 0 && !toggling {
		return nil
	}

	positions = anchorAtOrigin(positions, parent.Bool())

	r.log.Debug().
		Str("scriptId", string(script.ID)).
		Str("path", string(generatedPath)).
		Stringer("parent", parent).
		Int("positions", len(positions)).
		Msg("resolved blackboxed ranges")

	r.remote.ReplaceRanges(ctx, script.ID, positions)

	return nil
}

// anchorAtOrigin applies the engine's requirement that a range list starts
// at (0,0): a skipped script opens with a leading (0,0), otherwise the first
// transition is moved there.
func anchorAtOrigin(positions []m.Position, parentSkipped bool) []m.Position {
	if parentSkipped {
		positions = append([]m.Position{m.Origin}, positions...)
	}

	if len(positions) > 0 && !positions[0].IsOrigin() {
		positions[0] = m.Origin
	}

	return positions
}

func (r *rangeResolver) resolveUnmapped(ctx context.Context, script m.Script, generatedPath m.Path) {
	status := r.resolver.Resolve(generatedPath)
	byPattern := r.patterns.Matches(generatedPath)

	// When the decision agrees with the patterns the engine already applies
	// it on its own.
	if !status.IsSet() || status.Bool() == byPattern {
		return
	}

	var positions []m.Position
	if status.Bool() {
		positions = []m.Position{m.Origin}
	}

	r.remote.PushRanges(ctx, script.ID, positions)
}

// detailLookup fetches the source details of a generated script at most once.
type detailLookup struct {
	sourceMaps    adapter.SourceMapAdapter
	generatedPath m.Path
	details       []m.SourceDetail
	loaded        bool
}

func (d *detailLookup) startOf(ctx context.Context, source m.Path) (m.Position, error) {
	if !d.loaded {
		details, err := d.sourceMaps.AuthoredSourceDetails(ctx, d.generatedPath)
		if err != nil {
			return m.Position{}, fmt.Errorf("failed to get source details for %s: %w", d.generatedPath, err)
		}

		d.details = details
		d.loaded = true
	}

	for _, detail := range d.details {
		if detail.InferredPath != source {
			continue
		}

		if detail.StartPosition == nil {
			break
		}

		return *detail.StartPosition, nil
	}

	return m.Position{}, fmt.Errorf("%w: %s in %s", ErrMalformedDetail, source, d.generatedPath)
}
