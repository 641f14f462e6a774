package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/blackbox/internal/domain"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayVerdicts prints one row per path with its skip status.
func (s *SimpleUI) DisplayVerdicts(verdicts []Verdict) error {
	table, buf := s.newTable([]string{"Path", "Status"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, v := range verdicts {
		table.Append([]string{string(v.Path), v.Status.String()})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sources %d", len(verdicts)),
		fmt.Sprintf("%d skipped", countSkipped(verdicts)),
	})

	return s.render(table, buf)
}

// DisplayPatterns prints the skip patterns in the order the engine gets them.
func (s *SimpleUI) DisplayPatterns(patterns []string) error {
	if len(patterns) == 0 {
		s.printf("no skip patterns\n")
		return nil
	}

	table, buf := s.newTable([]string{"#", "Pattern"})

	for i, p := range patterns {
		table.Append([]string{strconv.Itoa(i + 1), p})
	}

	return s.render(table, buf)
}

// DisplayCommands prints the commands the engine received.
func (s *SimpleUI) DisplayCommands(commands []m.Command) error {
	if len(commands) == 0 {
		s.printf("no engine commands\n")
		return nil
	}

	table, buf := s.newTable([]string{"Method", "Script", "Arguments", "Result"})

	for _, cmd := range commands {
		script, args := describeCommand(cmd)
		table.Append([]string{string(cmd.Kind), script, args, resultOf(cmd)})
	}

	return s.render(table, buf)
}

// Browse is not available without a terminal.
func (s *SimpleUI) Browse(context.Context, domain.Skipper, []m.Path) error {
	return ErrNotInteractive
}

func (s *SimpleUI) newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func (s *SimpleUI) render(table *tablewriter.Table, buf *bytes.Buffer) error {
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
