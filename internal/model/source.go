// Package model defines the data structures for skip-file resolution.
package model

// Path represents a source path or URL. Authored and generated sources share
// the same keyspace but are never assumed equal.
type Path string

// ScriptID is the engine-assigned identifier of a parsed script.
type ScriptID string

// Script is a generated script reported by the engine.
type Script struct {
	ID  ScriptID
	URL Path
}

// Position is a zero-based (line, column) offset in a generated script.
type Position struct {
	Line   int
	Column int
}

// Origin is the position every non-empty blackbox range list starts at.
var Origin = Position{}

// IsOrigin reports whether p is (0,0).
func (p Position) IsOrigin() bool {
	return p.Line == 0 && p.Column == 0
}

// SourceDetail describes where an authored source starts inside its
// generated script.
type SourceDetail struct {
	InferredPath  Path
	StartPosition *Position
}

// ToggleRequest names a source either by display path or, for sources with
// no real file, by source reference.
type ToggleRequest struct {
	Path            Path
	SourceReference int
}

// LoadedScript pairs a parsed script with the client-side path its source
// map is keyed by.
type LoadedScript struct {
	Script Script
	Path   Path
}
