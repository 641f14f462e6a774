package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/blackbox/internal/domain"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()
var resolveParallelFlag int

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the blackboxed ranges of every parsed script",
		Long: `Resolve every parsed script of the session as if the engine had just
reported it, and print the commands the engine received.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(cmd, resolveOptions()...)
			if err != nil {
				return err
			}

			env.engine.Reset()

			if err := env.session.ResolveAll(cmd.Context(), env.manifest.Scripts()); err != nil {
				return err
			}

			return ui.DisplayCommands(env.engine.Commands())
		},
	}
	cmd.Flags().IntVarP(&resolveParallelFlag, "parallel", "p", 0, "number of scripts resolved at once (0 for the default)")

	return cmd
}

func resolveOptions() []domain.Option {
	if resolveParallelFlag <= 0 {
		return nil
	}

	return []domain.Option{domain.WithResolveLimit(resolveParallelFlag)}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
