package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/blackbox/internal/controller"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Show whether sources are skipped",
		Long: `Resolve every parsed script of the session, then print the skip status of
the given paths, or of every known source when no path is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			if err := env.session.ResolveAll(cmd.Context(), env.manifest.Scripts()); err != nil {
				return err
			}

			paths := toPaths(args)
			if len(paths) == 0 {
				paths = env.manifest.AllSources()
			}

			return ui.DisplayVerdicts(controller.Verdicts(env.session, paths))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
