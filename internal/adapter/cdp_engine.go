package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// ErrEngineRejected is returned when the engine answers a command with an
// error response.
var ErrEngineRejected = errors.New("engine rejected command")

const (
	methodSetBlackboxPatterns = "Debugger.setBlackboxPatterns"
	methodSetBlackboxedRanges = "Debugger.setBlackboxedRanges"
)

// Transport carries one encoded request to the engine and returns its
// response.
type Transport interface {
	Call(ctx context.Context, request []byte) ([]byte, error)
}

// CDPEngine encodes blackboxing commands as Chrome DevTools Protocol
// messages.
type CDPEngine struct {
	transport Transport
	seq       int64
}

// NewCDPEngine creates an engine on top of transport.
func NewCDPEngine(transport Transport) *CDPEngine {
	return &CDPEngine{transport: transport}
}

type scriptPosition struct {
	LineNumber   int `json:"lineNumber"`
	ColumnNumber int `json:"columnNumber"`
}

// SetBlackboxPatterns implements RemoteEngine.
func (e *CDPEngine) SetBlackboxPatterns(ctx context.Context, patterns []string) error {
	if patterns == nil {
		patterns = []string{}
	}

	return e.call(ctx, methodSetBlackboxPatterns, map[string]any{
		"patterns": patterns,
	})
}

// SetBlackboxedRanges implements RemoteEngine.
func (e *CDPEngine) SetBlackboxedRanges(ctx context.Context, scriptID m.ScriptID, positions []m.Position) error {
	wire := make([]scriptPosition, 0, len(positions))
	for _, p := range positions {
		wire = append(wire, scriptPosition{LineNumber: p.Line, ColumnNumber: p.Column})
	}

	return e.call(ctx, methodSetBlackboxedRanges, map[string]any{
		"scriptId":  string(scriptID),
		"positions": wire,
	})
}

func (e *CDPEngine) call(ctx context.Context, method string, params map[string]any) error {
	id := atomic.AddInt64(&e.seq, 1)

	request, err := encodeRequest(id, method, params)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", method, err)
	}

	response, err := e.transport.Call(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to send %s: %w", method, err)
	}

	return decodeResponse(id, method, response)
}

func encodeRequest(id int64, method string, params map[string]any) ([]byte, error) {
	request, err := sjson.SetBytes([]byte(`{}`), "id", id)
	if err != nil {
		return nil, err
	}

	request, err = sjson.SetBytes(request, "method", method)
	if err != nil {
		return nil, err
	}

	// params keys are fixed per method, so a single pass keeps field order stable.
	for _, key := range []string{"scriptId", "patterns", "positions"} {
		value, ok := params[key]
		if !ok {
			continue
		}

		request, err = sjson.SetBytes(request, "params."+key, value)
		if err != nil {
			return nil, err
		}
	}

	return request, nil
}

func decodeResponse(id int64, method string, response []byte) error {
	if !gjson.ValidBytes(response) {
		return fmt.Errorf("invalid response to %s", method)
	}

	if got := gjson.GetBytes(response, "id"); got.Exists() && got.Int() != id {
		return fmt.Errorf("response id %d does not match request %d", got.Int(), id)
	}

	if errResult := gjson.GetBytes(response, "error"); errResult.Exists() {
		return fmt.Errorf("%w: %s: %s", ErrEngineRejected, method, errResult.Get("message").String())
	}

	return nil
}

// LoopbackTransport answers every request locally. It writes each request
// as a JSON line to out when out is not nil, and rejects every request when
// unsupported is set, the way engines without blackboxing do.
type LoopbackTransport struct {
	out         io.Writer
	unsupported bool
	mu          sync.Mutex
}

// NewLoopbackTransport creates a transport that acknowledges requests.
func NewLoopbackTransport(out io.Writer, unsupported bool) *LoopbackTransport {
	return &LoopbackTransport{out: out, unsupported: unsupported}
}

// Call implements Transport.
func (t *LoopbackTransport) Call(_ context.Context, request []byte) ([]byte, error) {
	if t.out != nil {
		t.mu.Lock()
		_, err := fmt.Fprintf(t.out, "%s\n", request)
		t.mu.Unlock()

		if err != nil {
			return nil, err
		}
	}

	response, err := sjson.SetRawBytes([]byte(`{}`), "id", []byte(gjson.GetBytes(request, "id").Raw))
	if err != nil {
		return nil, err
	}

	if t.unsupported {
		return sjson.SetBytes(response, "error", map[string]any{
			"code":    -32601,
			"message": "'" + gjson.GetBytes(request, "method").String() + "' wasn't found",
		})
	}

	return sjson.SetRawBytes(response, "result", []byte(`{}`))
}
