package adapter

import (
	"context"
	"fmt"
	"strings"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// nodeInternalsPrefix marks core modules in client-facing paths.
const nodeInternalsPrefix = "<node_internals>/"

// Manifest answers source-map and script-registry lookups from the scripts
// listed in a session config.
type Manifest struct {
	scripts     []ScriptEntry
	byGenerated map[m.Path]int
	byAuthored  map[m.Path]int
	byURL       map[m.Path]int
	byReference map[int]int
}

// NewManifest indexes the scripts of a session config.
func NewManifest(scripts []ScriptEntry) *Manifest {
	mf := &Manifest{
		scripts:     scripts,
		byGenerated: make(map[m.Path]int, len(scripts)),
		byAuthored:  make(map[m.Path]int),
		byURL:       make(map[m.Path]int, len(scripts)),
		byReference: make(map[int]int),
	}

	for i, script := range scripts {
		mf.byGenerated[script.GeneratedPath()] = i
		mf.byURL[m.Path(script.URL)] = i

		if script.SourceReference != 0 {
			mf.byReference[script.SourceReference] = i
		}

		for _, source := range script.Sources {
			mf.byAuthored[m.Path(source.Path)] = i
		}
	}

	return mf
}

// Scripts returns every script of the manifest as the engine reported it.
func (mf *Manifest) Scripts() []m.LoadedScript {
	loaded := make([]m.LoadedScript, 0, len(mf.scripts))
	for _, script := range mf.scripts {
		loaded = append(loaded, m.LoadedScript{Script: script.Script(), Path: script.GeneratedPath()})
	}

	return loaded
}

// AllSources lists every path a user could toggle: authored sources, and
// generated scripts that have none.
func (mf *Manifest) AllSources() []m.Path {
	var paths []m.Path

	for _, script := range mf.scripts {
		if len(script.Sources) == 0 {
			paths = append(paths, script.GeneratedPath())
			continue
		}

		for _, source := range script.Sources {
			paths = append(paths, m.Path(source.Path))
		}
	}

	return paths
}

// DisplayPathToRealPath implements ScriptRegistry.
func (mf *Manifest) DisplayPathToRealPath(path m.Path) m.Path {
	return m.Path(strings.TrimPrefix(string(path), nodeInternalsPrefix))
}

// SyntheticURLFor implements ScriptRegistry.
func (mf *Manifest) SyntheticURLFor(sourceReference int) (m.Path, error) {
	i, ok := mf.byReference[sourceReference]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownSourceReference, sourceReference)
	}

	return m.Path(mf.scripts[i].URL), nil
}

// ScriptByURL implements ScriptRegistry.
func (mf *Manifest) ScriptByURL(url m.Path) (m.Script, bool) {
	i, ok := mf.byURL[url]
	if !ok {
		return m.Script{}, false
	}

	return mf.scripts[i].Script(), true
}

// GeneratedPathFromAuthoredPath implements SourceMapAdapter.
func (mf *Manifest) GeneratedPathFromAuthoredPath(_ context.Context, path m.Path) (m.Path, bool, error) {
	if _, ok := mf.byGenerated[path]; ok {
		return path, true, nil
	}

	if i, ok := mf.byAuthored[path]; ok {
		return mf.scripts[i].GeneratedPath(), true, nil
	}

	// Eval scripts are toggled through their synthetic URL.
	if i, ok := mf.byURL[path]; ok {
		return mf.scripts[i].GeneratedPath(), true, nil
	}

	return "", false, nil
}

// AuthoredSources implements SourceMapAdapter.
func (mf *Manifest) AuthoredSources(_ context.Context, generatedPath m.Path) ([]m.Path, error) {
	i, ok := mf.byGenerated[generatedPath]
	if !ok {
		return nil, nil
	}

	sources := make([]m.Path, 0, len(mf.scripts[i].Sources))
	for _, source := range mf.scripts[i].Sources {
		sources = append(sources, m.Path(source.Path))
	}

	return sources, nil
}

// AuthoredSourceDetails implements SourceMapAdapter.
func (mf *Manifest) AuthoredSourceDetails(_ context.Context, generatedPath m.Path) ([]m.SourceDetail, error) {
	i, ok := mf.byGenerated[generatedPath]
	if !ok {
		return nil, nil
	}

	details := make([]m.SourceDetail, 0, len(mf.scripts[i].Sources))

	for _, source := range mf.scripts[i].Sources {
		detail := m.SourceDetail{InferredPath: m.Path(source.Path)}
		if source.Line != nil && source.Column != nil {
			detail.StartPosition = &m.Position{Line: *source.Line, Column: *source.Column}
		}

		details = append(details, detail)
	}

	return details, nil
}
