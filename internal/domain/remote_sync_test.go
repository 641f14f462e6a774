package domain

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/blackbox/internal/adapter"
	"github.com/mouse-blink/blackbox/internal/adapter/mocks"
	m "github.com/mouse-blink/blackbox/internal/model"
)

func TestRemoteSync_ReplaceRanges(t *testing.T) {
	ctx := context.Background()

	t.Run("clear precedes set", func(t *testing.T) {
		engine := adapter.NewRecordingEngine(nil)
		remote := newRemoteSync(engine, zerolog.Nop())

		result := remote.ReplaceRanges(ctx, "5", []m.Position{m.Origin, {Line: 3}})

		assert.Equal(t, m.Applied, result)
		assert.Equal(t, [][]m.Position{{}, {m.Origin, {Line: 3}}}, rangeCommands(engine.Commands()))
	})

	t.Run("empty positions only clear", func(t *testing.T) {
		engine := adapter.NewRecordingEngine(nil)
		remote := newRemoteSync(engine, zerolog.Nop())

		remote.ReplaceRanges(ctx, "5", nil)

		assert.Equal(t, [][]m.Position{{}}, rangeCommands(engine.Commands()))
	})
}

func TestRemoteSync_Unsupported(t *testing.T) {
	ctx := context.Background()
	engine := mocks.NewMockRemoteEngine(t)
	rejected := errors.New("'Debugger.setBlackboxPatterns' wasn't found")

	engine.EXPECT().SetBlackboxPatterns(mock.Anything, mock.Anything).Return(rejected)
	engine.EXPECT().SetBlackboxedRanges(mock.Anything, mock.Anything, mock.Anything).Return(rejected)

	var buf bytes.Buffer
	remote := newRemoteSync(engine, zerolog.New(&buf).Level(zerolog.WarnLevel))

	assert.Equal(t, m.Unsupported, remote.PushPatterns(ctx, []string{"x"}))
	assert.Equal(t, m.Unsupported, remote.PushRanges(ctx, "1", []m.Position{m.Origin}))
	assert.Equal(t, m.Unsupported, remote.ReplaceRanges(ctx, "1", []m.Position{m.Origin}))

	assert.Equal(t, 1, strings.Count(buf.String(), "does not support skipFiles"))
}
