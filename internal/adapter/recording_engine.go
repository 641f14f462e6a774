package adapter

import (
	"context"
	"slices"
	"sync"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// RecordingEngine records every command before forwarding it to the next
// engine. Without a next engine every command is accepted.
type RecordingEngine struct {
	next     RemoteEngine
	mu       sync.Mutex
	commands []m.Command
}

// NewRecordingEngine wraps next, which may be nil.
func NewRecordingEngine(next RemoteEngine) *RecordingEngine {
	return &RecordingEngine{next: next}
}

// SetBlackboxPatterns implements RemoteEngine.
func (r *RecordingEngine) SetBlackboxPatterns(ctx context.Context, patterns []string) error {
	var err error
	if r.next != nil {
		err = r.next.SetBlackboxPatterns(ctx, patterns)
	}

	r.record(m.Command{
		Kind:     m.CommandSetPatterns,
		Patterns: slices.Clone(patterns),
		Rejected: err != nil,
	})

	return err
}

// SetBlackboxedRanges implements RemoteEngine.
func (r *RecordingEngine) SetBlackboxedRanges(ctx context.Context, scriptID m.ScriptID, positions []m.Position) error {
	var err error
	if r.next != nil {
		err = r.next.SetBlackboxedRanges(ctx, scriptID, positions)
	}

	r.record(m.Command{
		Kind:      m.CommandSetRanges,
		ScriptID:  scriptID,
		Positions: slices.Clone(positions),
		Rejected:  err != nil,
	})

	return err
}

// Commands returns a copy of the recorded commands in issue order.
func (r *RecordingEngine) Commands() []m.Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.commands)
}

// Reset forgets the recorded commands.
func (r *RecordingEngine) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = nil
}

func (r *RecordingEngine) record(cmd m.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = append(r.commands, cmd)
}
