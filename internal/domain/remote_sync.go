package domain

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/blackbox/internal/adapter"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// remoteSync pushes pattern and range state to the engine. Engines that do
// not implement blackboxing reject these commands; that is reported, never
// returned as an error.
type remoteSync struct {
	engine adapter.RemoteEngine
	log    zerolog.Logger
	warned atomic.Bool
}

func newRemoteSync(engine adapter.RemoteEngine, log zerolog.Logger) *remoteSync {
	return &remoteSync{engine: engine, log: log}
}

// PushPatterns replaces the engine's blackbox patterns.
func (s *remoteSync) PushPatterns(ctx context.Context, patterns []string) m.SyncResult {
	if err := s.engine.SetBlackboxPatterns(ctx, patterns); err != nil {
		s.unsupported(err, zerolog.Dict().Int("patterns", len(patterns)))
		return m.Unsupported
	}

	s.log.Debug().Strs("patterns", patterns).Msg("blackbox patterns updated")

	return m.Applied
}

// PushRanges sets the blackboxed ranges of one script in a single call.
func (s *remoteSync) PushRanges(ctx context.Context, scriptID m.ScriptID, positions []m.Position) m.SyncResult {
	if positions == nil {
		positions = []m.Position{}
	}

	if err := s.engine.SetBlackboxedRanges(ctx, scriptID, positions); err != nil {
		s.unsupported(err, zerolog.Dict().Str("scriptId", string(scriptID)))
		return m.Unsupported
	}

	s.log.Debug().Str("scriptId", string(scriptID)).Int("positions", len(positions)).Msg("blackboxed ranges updated")

	return m.Applied
}

// ReplaceRanges clears the script's ranges and then, if positions is not
// empty, sets them. The clear completes before the set is issued.
func (s *remoteSync) ReplaceRanges(ctx context.Context, scriptID m.ScriptID, positions []m.Position) m.SyncResult {
	result := s.PushRanges(ctx, scriptID, nil)

	if len(positions) == 0 {
		return result
	}

	return s.PushRanges(ctx, scriptID, positions)
}

func (s *remoteSync) unsupported(err error, fields *zerolog.Event) {
	if s.warned.CompareAndSwap(false, true) {
		s.log.Warn().Err(err).Dict("command", fields).Msg("this runtime does not support skipFiles")
		return
	}

	s.log.Debug().Err(err).Dict("command", fields).Msg("skipFiles command rejected")
}
