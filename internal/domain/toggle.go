package domain

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/blackbox/internal/adapter"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// toggleWorkflow flips the skip status of one source on user request.
type toggleWorkflow struct {
	resolver   statusResolver
	statuses   *StatusMap
	patterns   *PatternStore
	ranges     *rangeResolver
	scripts    adapter.ScriptRegistry
	sourceMaps adapter.SourceMapAdapter
	paths      adapter.PathTransformer
	log        zerolog.Logger
}

// Toggle runs the whole workflow. Requests for sources the engine has not
// reported yet, and for generated scripts that have authored sources, are
// logged and ignored. The status map update stays in place even when a later
// step fails.
func (w *toggleWorkflow) Toggle(ctx context.Context, req m.ToggleRequest) error {
	path, err := w.requestedPath(req)
	if err != nil {
		return err
	}

	generatedPath, ok, err := w.sourceMaps.GeneratedPathFromAuthoredPath(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to get generated path for %s: %w", path, err)
	}

	if !ok {
		w.log.Info().Str("path", string(path)).Msg("can't toggle the skipFile status, haven't seen it yet")
		return nil
	}

	sources, err := w.sourceMaps.AuthoredSources(ctx, generatedPath)
	if err != nil {
		return fmt.Errorf("failed to get authored sources for %s: %w", generatedPath, err)
	}

	if generatedPath == path && len(sources) > 0 {
		w.log.Info().Str("path", string(path)).Msg("can't toggle the skipFile status of a script with a sourcemap")
		return nil
	}

	newStatus := !w.resolver.Resolve(path).Bool()

	w.log.Info().Str("path", string(path)).Bool("skip", newStatus).Msg("setting the skipFile status")
	w.statuses.Set(path, newStatus)

	targetPath, ok := w.paths.TargetPathFromClientPath(generatedPath)
	if !ok {
		targetPath = generatedPath
	}

	script, ok := w.scripts.ScriptByURL(targetPath)
	if !ok {
		w.log.Info().Str("url", string(targetPath)).Msg("script not parsed yet, ranges will be set when it is")
		return nil
	}

	if err := w.ranges.Resolve(ctx, script, generatedPath, sources, true); err != nil {
		return fmt.Errorf("failed to resolve skip ranges for %s: %w", generatedPath, err)
	}

	if newStatus {
		w.patterns.IncludePath(ctx, script.URL)
	} else {
		w.patterns.ExcludePath(ctx, script.URL)
	}

	return nil
}

func (w *toggleWorkflow) requestedPath(req m.ToggleRequest) (m.Path, error) {
	if req.Path != "" {
		return w.scripts.DisplayPathToRealPath(req.Path), nil
	}

	url, err := w.scripts.SyntheticURLFor(req.SourceReference)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source reference %d: %w", req.SourceReference, err)
	}

	return url, nil
}
