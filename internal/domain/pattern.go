package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// pattern is one skip-matching regex plus the exact paths it must no longer
// match. Keeping exceptions structured lets a path be excluded or
// re-included without touching what the pattern matches for any other path.
type pattern struct {
	source     string
	re         *regexp.Regexp
	exceptions []exception
}

type exception struct {
	path   m.Path
	source string
	re     *regexp.Regexp
}

func compilePattern(source string) (*pattern, error) {
	re, err := regexp.Compile("(?i)" + source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile skip pattern %q: %w", source, err)
	}

	return &pattern{source: source, re: re}, nil
}

func exactPattern(path m.Path) *pattern {
	return &pattern{source: exactPathRegex(path), re: exactPathMatcher(path)}
}

func exactPathMatcher(path m.Path) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + exactPathRegex(path))
}

func (p *pattern) matches(path m.Path) bool {
	if !p.re.MatchString(string(path)) {
		return false
	}

	return !p.excepts(path)
}

func (p *pattern) excepts(path m.Path) bool {
	for _, e := range p.exceptions {
		if e.re.MatchString(string(path)) {
			return true
		}
	}

	return false
}

// exclude makes p stop matching path. It reports whether p changed.
func (p *pattern) exclude(path m.Path) bool {
	if !p.matches(path) {
		return false
	}

	p.exceptions = append(p.exceptions, exception{
		path:   path,
		source: pathToRegex(path),
		re:     exactPathMatcher(path),
	})

	return true
}

// include drops every exception covering path. It reports whether p changed.
func (p *pattern) include(path m.Path) bool {
	kept := p.exceptions[:0]

	for _, e := range p.exceptions {
		if e.re.MatchString(string(path)) {
			continue
		}

		kept = append(kept, e)
	}

	changed := len(kept) != len(p.exceptions)
	p.exceptions = kept

	return changed
}

// wireSource renders p for the engine. Exceptions become a leading negative
// lookahead; the original source moves into a positive lookahead so that its
// own anchors keep their meaning.
func (p *pattern) wireSource() string {
	if len(p.exceptions) == 0 {
		return p.source
	}

	excepted := make([]string, 0, len(p.exceptions))
	for _, e := range p.exceptions {
		excepted = append(excepted, e.source)
	}

	return fmt.Sprintf(`^(?!(?:%s)$)(?=[\s\S]*?(?:%s))`, strings.Join(excepted, "|"), p.source)
}
