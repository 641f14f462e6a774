package adapter

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/blackbox/internal/model"
)

// SessionConfig is the YAML description of a debugging session: the static
// skip configuration plus the scripts the engine has reported.
type SessionConfig struct {
	SkipFiles         []string          `yaml:"skipFiles"`
	SkipFileRegExps   []string          `yaml:"skipFileRegExps"`
	PathMapping       map[string]string `yaml:"pathMapping"`
	UnsupportedEngine bool              `yaml:"unsupportedEngine"`
	Scripts           []ScriptEntry     `yaml:"scripts"`
}

// ScriptEntry describes one generated script and its authored sources.
type ScriptEntry struct {
	ID              string        `yaml:"id"`
	URL             string        `yaml:"url"`
	Path            string        `yaml:"path"`
	SourceReference int           `yaml:"sourceReference"`
	Sources         []SourceEntry `yaml:"sources"`
}

// SourceEntry is an authored source with an optional start position.
type SourceEntry struct {
	Path   string `yaml:"path"`
	Line   *int   `yaml:"line"`
	Column *int   `yaml:"column"`
}

// GeneratedPath is the client-side path the script's source map is keyed by.
// Scripts without a path (eval code) are keyed by their URL.
func (e ScriptEntry) GeneratedPath() m.Path {
	if e.Path != "" {
		return m.Path(e.Path)
	}

	return m.Path(e.URL)
}

// Script returns the engine view of the entry.
func (e ScriptEntry) Script() m.Script {
	return m.Script{ID: m.ScriptID(e.ID), URL: m.Path(e.URL)}
}

// LoadSessionConfig reads and validates a session file.
func LoadSessionConfig(path m.Path) (*SessionConfig, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read session config: %w", err)
	}

	return ParseSessionConfig(content)
}

// ParseSessionConfig decodes and validates session YAML.
func ParseSessionConfig(content []byte) (*SessionConfig, error) {
	var cfg SessionConfig

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse session config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every problem in the config at once. Negated globs are not
// errors; the engine drops them with a warning.
func (c *SessionConfig) Validate() error {
	var result *multierror.Error

	for _, pattern := range c.SkipFileRegExps {
		if _, err := regexp.Compile("(?i)" + pattern); err != nil {
			result = multierror.Append(result, fmt.Errorf("skipFileRegExps %q: %w", pattern, err))
		}
	}

	for _, glob := range c.SkipFiles {
		if strings.TrimSpace(glob) == "" {
			result = multierror.Append(result, fmt.Errorf("skipFiles contains an empty entry"))
		}
	}

	ids := make(map[string]struct{}, len(c.Scripts))
	refs := make(map[int]string)

	for i, script := range c.Scripts {
		if script.ID == "" {
			result = multierror.Append(result, fmt.Errorf("scripts[%d]: missing id", i))
		} else if _, dup := ids[script.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("scripts[%d]: duplicate id %q", i, script.ID))
		}

		ids[script.ID] = struct{}{}

		if script.URL == "" {
			result = multierror.Append(result, fmt.Errorf("scripts[%d]: missing url", i))
		}

		if script.SourceReference != 0 {
			if other, dup := refs[script.SourceReference]; dup {
				result = multierror.Append(result, fmt.Errorf("scripts[%d]: sourceReference %d already used by %q",
					i, script.SourceReference, other))
			}

			refs[script.SourceReference] = script.ID
		}

		for j, source := range script.Sources {
			if source.Path == "" {
				result = multierror.Append(result, fmt.Errorf("scripts[%d].sources[%d]: missing path", i, j))
			}

			if (source.Line == nil) != (source.Column == nil) {
				result = multierror.Append(result, fmt.Errorf("scripts[%d].sources[%d]: line and column must be set together", i, j))
			}
		}
	}

	return result.ErrorOrNil()
}
