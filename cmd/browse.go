package cmd

import (
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse sources and toggle their skip status interactively",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			if err := env.session.ResolveAll(cmd.Context(), env.manifest.Scripts()); err != nil {
				return err
			}

			defer env.session.Close()

			return ui.Browse(cmd.Context(), env.session, env.manifest.AllSources())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
