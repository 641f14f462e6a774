package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// slashClass matches either path separator. It is valid in both RE2 and the
// engine's JavaScript regex dialect.
const slashClass = `[/\\]`

const (
	anyRun     = `.*`
	anySubdirs = `(.*` + slashClass + `)?`
)

// globToRegex converts a skipFiles glob into an unanchored regex source.
// `**/` matches any number of directories, `*` matches any run of characters,
// and slashes match in either direction. Everything else is literal.
func globToRegex(glob string) string {
	var b strings.Builder

	for i := 0; i < len(glob); i++ {
		c := glob[i]

		switch {
		case c == '*' && i+1 < len(glob) && glob[i+1] == '*':
			i++
			if i+1 < len(glob) && isSlash(glob[i+1]) {
				i++
			}

			b.WriteString(anySubdirs)
		case c == '*':
			b.WriteString(anyRun)
		case isSlash(c):
			b.WriteString(slashClass)
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}

	return simplifyGlobRegex(b.String())
}

func simplifyGlobRegex(source string) string {
	for {
		next := strings.ReplaceAll(source, anyRun+slashClass+anyRun, anyRun)
		next = strings.ReplaceAll(next, anyRun+anyRun, anyRun)

		if next == source {
			return source
		}

		source = next
	}
}

// pathToRegex returns an unanchored regex source matching path literally,
// with slashes matching in either direction.
func pathToRegex(path m.Path) string {
	var b strings.Builder

	for i := 0; i < len(path); i++ {
		c := path[i]
		if isSlash(c) {
			b.WriteString(slashClass)
			continue
		}

		b.WriteString(regexp.QuoteMeta(string(path[i : i+1])))
	}

	return b.String()
}

// exactPathRegex returns an anchored regex source matching only path.
func exactPathRegex(path m.Path) string {
	return "^" + pathToRegex(path) + "$"
}

func isSlash(c byte) bool {
	return c == '/' || c == '\\'
}

func isNegatedGlob(glob string) bool {
	return strings.HasPrefix(glob, "!")
}
