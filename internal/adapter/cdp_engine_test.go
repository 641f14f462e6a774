package adapter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	m "github.com/mouse-blink/blackbox/internal/model"
)

type stubTransport struct {
	requests [][]byte
	response func(request []byte) ([]byte, error)
}

func (s *stubTransport) Call(_ context.Context, request []byte) ([]byte, error) {
	s.requests = append(s.requests, request)
	return s.response(request)
}

func TestCDPEngine_Encoding(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	engine := NewCDPEngine(NewLoopbackTransport(&out, false))

	require.NoError(t, engine.SetBlackboxPatterns(ctx, []string{`node_modules[/\\]`}))
	require.NoError(t, engine.SetBlackboxedRanges(ctx, "7", []m.Position{m.Origin, {Line: 3, Column: 2}}))
	require.NoError(t, engine.SetBlackboxedRanges(ctx, "7", nil))
	require.NoError(t, engine.SetBlackboxPatterns(ctx, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	assert.JSONEq(t,
		`{"id":1,"method":"Debugger.setBlackboxPatterns","params":{"patterns":["node_modules[/\\\\]"]}}`,
		lines[0])
	assert.JSONEq(t,
		`{"id":2,"method":"Debugger.setBlackboxedRanges","params":{"scriptId":"7","positions":[`+
			`{"lineNumber":0,"columnNumber":0},{"lineNumber":3,"columnNumber":2}]}}`,
		lines[1])
	assert.JSONEq(t,
		`{"id":3,"method":"Debugger.setBlackboxedRanges","params":{"scriptId":"7","positions":[]}}`,
		lines[2])
	assert.Equal(t, "[]", gjson.Get(lines[3], "params.patterns").Raw)
}

func TestCDPEngine_Responses(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported engine", func(t *testing.T) {
		engine := NewCDPEngine(NewLoopbackTransport(nil, true))

		err := engine.SetBlackboxPatterns(ctx, []string{"x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEngineRejected)
		assert.Contains(t, err.Error(), "'Debugger.setBlackboxPatterns' wasn't found")
	})

	t.Run("transport failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		engine := NewCDPEngine(&stubTransport{response: func([]byte) ([]byte, error) { return nil, boom }})

		err := engine.SetBlackboxedRanges(ctx, "1", nil)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("mismatched id", func(t *testing.T) {
		engine := NewCDPEngine(&stubTransport{response: func([]byte) ([]byte, error) {
			return []byte(`{"id":99,"result":{}}`), nil
		}})

		err := engine.SetBlackboxedRanges(ctx, "1", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})

	t.Run("invalid json", func(t *testing.T) {
		engine := NewCDPEngine(&stubTransport{response: func([]byte) ([]byte, error) {
			return []byte(`{"id":`), nil
		}})

		assert.Error(t, engine.SetBlackboxPatterns(ctx, nil))
	})
}
