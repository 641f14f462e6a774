package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/blackbox/internal/model"
)

func TestGlobToRegex(t *testing.T) {
	tests := []struct {
		glob string
		want string
	}{
		{glob: "node_modules/**", want: `node_modules[/\\](.*[/\\])?`},
		{glob: "**/lib/*.js", want: `(.*[/\\])?lib[/\\].*\.js`},
		{glob: "*/*", want: `.*`},
		{glob: "a**b", want: `a(.*[/\\])?b`},
		{glob: `C:\lib\x.js`, want: `C:[/\\]lib[/\\]x\.js`},
		{glob: "file(1)?.js", want: `file\(1\)\?\.js`},
	}

	for _, tt := range tests {
		t.Run(tt.glob, func(t *testing.T) {
			assert.Equal(t, tt.want, globToRegex(tt.glob))
		})
	}
}

func TestGlobToRegex_Matching(t *testing.T) {
	t.Run("double star directory", func(t *testing.T) {
		p, err := compilePattern(globToRegex("node_modules/**"))
		require.NoError(t, err)

		assert.True(t, p.matches("/app/node_modules/x.js"))
		assert.True(t, p.matches(`C:\app\node_modules\pkg\index.js`))
		assert.True(t, p.matches("/APP/NODE_MODULES/X.JS"))
		assert.False(t, p.matches("/app/src/x.js"))
	})

	t.Run("leading double star", func(t *testing.T) {
		p, err := compilePattern(globToRegex("**/vendor/*.js"))
		require.NoError(t, err)

		assert.True(t, p.matches("/srv/vendor/jquery.js"))
		assert.True(t, p.matches("vendor/jquery.js"))
		assert.False(t, p.matches("/srv/vendors/jquery.ts"))
	})
}

func TestPathToRegex(t *testing.T) {
	assert.Equal(t, `[/\\]a\.b[/\\]c\+\+`, pathToRegex("/a.b/c++"))
	assert.Equal(t, `^[/\\]x$`, exactPathRegex("/x"))

	re := regexp.MustCompile("(?i)" + exactPathRegex("/app/src/a.ts"))
	assert.True(t, re.MatchString(`\app\src\A.ts`))
	assert.False(t, re.MatchString("/app/src/a.tsx"))
	assert.False(t, re.MatchString("/app/src/aXts"))
}

func TestPathToRegex_NonASCII(t *testing.T) {
	path := m.Path("/app/é/ü.js")

	re := regexp.MustCompile(exactPathRegex(path))
	assert.True(t, re.MatchString(string(path)))
}

func TestIsNegatedGlob(t *testing.T) {
	assert.True(t, isNegatedGlob("!foo/**"))
	assert.False(t, isNegatedGlob("foo/!bar"))
}
