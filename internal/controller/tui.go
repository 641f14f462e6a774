package controller

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/blackbox/internal/domain"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output         io.Writer
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI. programOptions are passed to every Bubble Tea
// program it starts.
func NewTUI(output io.Writer, programOptions ...tea.ProgramOption) *TUI {
	return &TUI{output: output, programOptions: programOptions}
}

// DisplayVerdicts prints one styled line per path.
func (t *TUI) DisplayVerdicts(verdicts []Verdict) error {
	for _, v := range verdicts {
		t.printf("%s  %s\n", statusBadge(v.Status, false), v.Path)
	}

	t.printf("\n%s sources, %d skipped\n", accentStyle.Render(fmt.Sprintf("%d", len(verdicts))), countSkipped(verdicts))

	return nil
}

// DisplayPatterns prints the skip patterns in the order the engine gets them.
func (t *TUI) DisplayPatterns(patterns []string) error {
	if len(patterns) == 0 {
		t.printf("no skip patterns\n")
		return nil
	}

	for i, p := range patterns {
		t.printf("%s %s\n", mutedStyle.Render(fmt.Sprintf("%3d", i+1)), p)
	}

	return nil
}

// DisplayCommands prints the commands the engine received.
func (t *TUI) DisplayCommands(commands []m.Command) error {
	if len(commands) == 0 {
		t.printf("no engine commands\n")
		return nil
	}

	for _, cmd := range commands {
		script, args := describeCommand(cmd)

		result := appliedStyle.Render(resultOf(cmd))
		if cmd.Rejected {
			result = rejectedStyle.Render(resultOf(cmd))
		}

		t.printf("%s %s %s %s\n", accentStyle.Render(string(cmd.Kind)), script, args, result)
	}

	return nil
}

// Browse opens an interactive list of sources in which the selected source
// can be toggled. It returns when the user quits or ctx is done.
func (t *TUI) Browse(ctx context.Context, skipper domain.Skipper, sources []m.Path) error {
	options := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithContext(ctx)}, t.programOptions...)
	program := tea.NewProgram(newBrowseModel(ctx, skipper, sources), options...)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
