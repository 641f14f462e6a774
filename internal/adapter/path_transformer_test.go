package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/blackbox/internal/model"
)

func TestPrefixPathTransformer(t *testing.T) {
	transformer := NewPrefixPathTransformer(map[string]string{
		"/app/out":        "http://localhost:8080",
		"/app/out/static": "http://cdn.local",
		"/srv/":           "file:///srv/",
	})

	tests := []struct {
		name   string
		path   m.Path
		want   m.Path
		wantOK bool
	}{
		{name: "prefix", path: "/app/out/app.js", want: "http://localhost:8080/app.js", wantOK: true},
		{name: "longest prefix wins", path: "/app/out/static/x.js", want: "http://cdn.local/x.js", wantOK: true},
		{name: "exact prefix", path: "/app/out", want: "http://localhost:8080", wantOK: true},
		{name: "prefix with trailing slash", path: "/srv/a.js", want: "file:///srv/a.js", wantOK: true},
		{name: "partial segment", path: "/app/outside/a.js"},
		{name: "no mapping", path: "VM12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transformer.TargetPathFromClientPath(tt.path)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
