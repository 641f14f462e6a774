package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI returns the interactive UI when tty is set and the table UI
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether output is a terminal.
func IsTTY(output any) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
