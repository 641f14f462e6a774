package cmd

import (
	"github.com/spf13/cobra"
)

// patternsCmd represents the patterns command.
var patternsCmd = newPatternsCmd()

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Print the skip patterns sent to the engine",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			return ui.DisplayPatterns(env.session.Patterns())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
