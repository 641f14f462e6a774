package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/blackbox/internal/controller"
)

const testSession = `
skipFiles: ["**/node_modules/**", "**/vendor/**"]
pathMapping:
  /app/out: http://localhost:8080
scripts:
  - id: "10"
    url: http://localhost:8080/app.js
    path: /app/out/app.js
    sources:
      - { path: /app/src/app.ts, line: 0, column: 0 }
      - { path: /app/vendor/lib.ts, line: 12, column: 0 }
      - { path: /app/src/tail.ts, line: 40, column: 2 }
  - id: "11"
    url: http://localhost:8080/node_modules/lodash/index.js
    path: /app/out/node_modules/lodash/index.js
  - id: "12"
    url: VM12
    sourceReference: 12
`

func newTestRootCmd() *cobra.Command {
	root := newRootCmd()
	root.AddCommand(newCheckCmd(), newPatternsCmd(), newResolveCmd(), newToggleCmd(), newBrowseCmd())

	return root
}

func writeSession(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := newTestRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestCheckCmd(t *testing.T) {
	config := writeSession(t, testSession)

	t.Run("every known source", func(t *testing.T) {
		out, _, err := runCommand(t, "check", "-c", config)
		require.NoError(t, err)

		for _, want := range []string{"/app/src/app.ts", "/app/vendor/lib.ts", "/app/out/node_modules/lodash/index.js", "VM12", "TOTAL SOURCES 5"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("given paths", func(t *testing.T) {
		out, _, err := runCommand(t, "check", "-c", config, "/srv/node_modules/x.js")
		require.NoError(t, err)

		assert.Contains(t, out, "/srv/node_modules/x.js")
		assert.Contains(t, out, "1 SKIPPED")
	})
}

func TestPatternsCmd(t *testing.T) {
	config := writeSession(t, testSession)

	out, _, err := runCommand(t, "patterns", "-c", config)
	require.NoError(t, err)

	assert.Contains(t, out, `(.*[/\\])?node_modules[/\\](.*[/\\])?`)
	assert.Contains(t, out, `(.*[/\\])?vendor[/\\](.*[/\\])?`)
}

func TestResolveCmd(t *testing.T) {
	config := writeSession(t, testSession)

	out, _, err := runCommand(t, "resolve", "-c", config, "--parallel", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "setBlackboxedRanges")
	assert.Contains(t, out, "[(0,0) (40,2)]")
	assert.NotContains(t, out, "setBlackboxPatterns")
}

func TestToggleCmd(t *testing.T) {
	config := writeSession(t, testSession)

	t.Run("by path", func(t *testing.T) {
		out, _, err := runCommand(t, "toggle", "-c", config, "/app/out/node_modules/lodash/index.js")
		require.NoError(t, err)

		assert.Contains(t, out, "setBlackboxedRanges")
		assert.Contains(t, out, "setBlackboxPatterns")
		assert.Contains(t, out, "no-skip")
	})

	t.Run("by source reference", func(t *testing.T) {
		out, _, err := runCommand(t, "toggle", "-c", config, "--ref", "12")
		require.NoError(t, err)

		assert.Contains(t, out, "VM12")
		assert.Contains(t, out, "[(0,0)]")
	})

	t.Run("twice restores the status", func(t *testing.T) {
		out, _, err := runCommand(t, "toggle", "-c", config, "/app/src/app.ts", "/app/src/app.ts")
		require.NoError(t, err)

		assert.Contains(t, out, "[(0,0) (0,0) (12,0)]")
		assert.Contains(t, out, "0 SKIPPED")
	})

	t.Run("nothing to toggle", func(t *testing.T) {
		_, _, err := runCommand(t, "toggle", "-c", config)

		assert.Error(t, err)
	})

	t.Run("unknown source reference", func(t *testing.T) {
		_, _, err := runCommand(t, "toggle", "-c", config, "--ref", "99")

		assert.Error(t, err)
	})
}

func TestToggleCmd_UnsupportedEngine(t *testing.T) {
	config := writeSession(t, "unsupportedEngine: true\n"+strings.TrimPrefix(testSession, "\n"))

	out, errOut, err := runCommand(t, "toggle", "-c", config, "--ref", "12")
	require.NoError(t, err)

	assert.Contains(t, out, "unsupported")
	assert.Contains(t, errOut, "does not support skipFiles")
}

func TestRootCmd_Wire(t *testing.T) {
	config := writeSession(t, testSession)

	out, _, err := runCommand(t, "patterns", "-c", config, "--wire")
	require.NoError(t, err)

	assert.Contains(t, out, `"method":"Debugger.setBlackboxPatterns"`)
}

func TestRootCmd_Verbose(t *testing.T) {
	config := writeSession(t, testSession)

	_, errOut, err := runCommand(t, "patterns", "-c", config, "--verbose")
	require.NoError(t, err)

	assert.Contains(t, errOut, "session loaded")
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := runCommand(t, "patterns", "-c", filepath.Join(t.TempDir(), "missing.yaml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid regex", func(t *testing.T) {
		config := writeSession(t, "skipFileRegExps: [\"(?<=a)b\"]\n")

		_, _, err := runCommand(t, "patterns", "-c", config)

		assert.Error(t, err)
	})
}

func TestBrowseCmd_NotInteractive(t *testing.T) {
	config := writeSession(t, testSession)

	_, _, err := runCommand(t, "browse", "-c", config)

	assert.ErrorIs(t, err, controller.ErrNotInteractive)
}
