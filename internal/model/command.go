package model

// CommandKind names a remote engine command issued by the engine.
type CommandKind string

const (
	// CommandSetPatterns is Debugger.setBlackboxPatterns.
	CommandSetPatterns CommandKind = "setBlackboxPatterns"
	// CommandSetRanges is Debugger.setBlackboxedRanges.
	CommandSetRanges CommandKind = "setBlackboxedRanges"
)

// Command records one call made to the remote engine.
type Command struct {
	Kind      CommandKind
	ScriptID  ScriptID   // set for CommandSetRanges
	Patterns  []string   // set for CommandSetPatterns
	Positions []Position // set for CommandSetRanges
	Rejected  bool
}

// SyncResult reports whether the engine applied a pushed state.
type SyncResult int

const (
	// Applied means the engine accepted the command.
	Applied SyncResult = iota
	// Unsupported means the engine rejected or does not implement the command.
	Unsupported
)

func (r SyncResult) String() string {
	if r == Applied {
		return "applied"
	}

	return "unsupported"
}
