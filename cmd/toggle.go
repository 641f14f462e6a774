package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/blackbox/internal/controller"
	m "github.com/mouse-blink/blackbox/internal/model"
)

// toggleCmd represents the toggle command.
var toggleCmd = newToggleCmd()
var toggleRefFlags []int

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle [paths...]",
		Short: "Flip the skip status of sources",
		Long: `Toggle the skip status of each path in order, then print the commands the
engine received and the resulting status of every toggled source.

Sources without a real file, such as eval scripts, are toggled by their
source reference with --ref.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(toggleRefFlags) == 0 {
				return errors.New("nothing to toggle: pass a path or --ref")
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			env.engine.Reset()

			requests := make([]m.ToggleRequest, 0, len(args)+len(toggleRefFlags))
			for _, path := range toPaths(args) {
				requests = append(requests, m.ToggleRequest{Path: path})
			}

			for _, ref := range toggleRefFlags {
				requests = append(requests, m.ToggleRequest{SourceReference: ref})
			}

			toggled := make([]m.Path, 0, len(requests))

			for _, req := range requests {
				if err := env.session.ToggleSkipStatus(cmd.Context(), req); err != nil {
					return err
				}

				path, err := toggledPath(env, req)
				if err != nil {
					return err
				}

				toggled = append(toggled, path)
			}

			if err := ui.DisplayCommands(env.engine.Commands()); err != nil {
				return err
			}

			return ui.DisplayVerdicts(controller.Verdicts(env.session, toggled))
		},
	}
	cmd.Flags().IntSliceVarP(&toggleRefFlags, "ref", "r", nil, "source reference of a path-less source (can be repeated)")

	return cmd
}

func toggledPath(env *environment, req m.ToggleRequest) (m.Path, error) {
	if req.Path != "" {
		return env.manifest.DisplayPathToRealPath(req.Path), nil
	}

	return env.manifest.SyntheticURLFor(req.SourceReference)
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
