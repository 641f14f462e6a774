package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/blackbox/internal/model"
)

func TestRecordingEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts without a next engine", func(t *testing.T) {
		engine := NewRecordingEngine(nil)

		require.NoError(t, engine.SetBlackboxPatterns(ctx, []string{"a"}))
		require.NoError(t, engine.SetBlackboxedRanges(ctx, "1", []m.Position{m.Origin}))

		assert.Equal(t, []m.Command{
			{Kind: m.CommandSetPatterns, Patterns: []string{"a"}},
			{Kind: m.CommandSetRanges, ScriptID: "1", Positions: []m.Position{m.Origin}},
		}, engine.Commands())

		engine.Reset()
		assert.Empty(t, engine.Commands())
	})

	t.Run("records rejections of the next engine", func(t *testing.T) {
		engine := NewRecordingEngine(NewCDPEngine(NewLoopbackTransport(nil, true)))

		err := engine.SetBlackboxedRanges(ctx, "1", []m.Position{})

		assert.ErrorIs(t, err, ErrEngineRejected)
		require.Len(t, engine.Commands(), 1)
		assert.True(t, engine.Commands()[0].Rejected)
	})

	t.Run("recorded arguments are copies", func(t *testing.T) {
		engine := NewRecordingEngine(nil)
		patterns := []string{"a"}

		require.NoError(t, engine.SetBlackboxPatterns(ctx, patterns))
		patterns[0] = "b"

		assert.Equal(t, []string{"a"}, engine.Commands()[0].Patterns)
	})
}
