package adapter

import (
	"sort"
	"strings"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// PrefixPathTransformer maps client paths to engine URLs by replacing the
// longest matching client prefix.
type PrefixPathTransformer struct {
	prefixes []string
	mapping  map[string]string
}

// NewPrefixPathTransformer builds a transformer from client-prefix to
// target-prefix pairs.
func NewPrefixPathTransformer(mapping map[string]string) *PrefixPathTransformer {
	prefixes := make([]string, 0, len(mapping))
	for prefix := range mapping {
		prefixes = append(prefixes, prefix)
	}

	sort.Slice(prefixes, func(i, j int) bool {
		return len(prefixes[i]) > len(prefixes[j])
	})

	return &PrefixPathTransformer{prefixes: prefixes, mapping: mapping}
}

// TargetPathFromClientPath implements PathTransformer.
func (t *PrefixPathTransformer) TargetPathFromClientPath(path m.Path) (m.Path, bool) {
	p := string(path)

	for _, prefix := range t.prefixes {
		if !strings.HasPrefix(p, prefix) {
			continue
		}

		rest := p[len(prefix):]
		if rest != "" && !strings.HasPrefix(rest, "/") && !strings.HasSuffix(prefix, "/") {
			continue
		}

		return m.Path(t.mapping[prefix] + rest), true
	}

	return "", false
}
