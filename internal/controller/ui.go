// Package controller provides output adapters for displaying skip-file state.
package controller

import (
	"context"
	"errors"

	"github.com/mouse-blink/blackbox/internal/domain"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// ErrNotInteractive is returned by Browse when the output is not a terminal.
var ErrNotInteractive = errors.New("browse needs an interactive terminal")

// Verdict is the resolved skip status of one path.
type Verdict struct {
	Path   m.Path
	Status m.SkipStatus
}

// UI defines the interface for displaying skip-file state.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayVerdicts(verdicts []Verdict) error
	DisplayPatterns(patterns []string) error
	DisplayCommands(commands []m.Command) error
	Browse(ctx context.Context, skipper domain.Skipper, sources []m.Path) error
}

// Verdicts resolves every path through skipper.
func Verdicts(skipper domain.Skipper, paths []m.Path) []Verdict {
	verdicts := make([]Verdict, 0, len(paths))
	for _, path := range paths {
		verdicts = append(verdicts, Verdict{Path: path, Status: skipper.ShouldSkipSource(path)})
	}

	return verdicts
}

func describeCommand(cmd m.Command) (string, string) {
	if cmd.Kind == m.CommandSetPatterns {
		return "-", formatCount(len(cmd.Patterns), "pattern")
	}

	return string(cmd.ScriptID), formatPositions(cmd.Positions)
}

func resultOf(cmd m.Command) string {
	if cmd.Rejected {
		return m.Unsupported.String()
	}

	return m.Applied.String()
}
