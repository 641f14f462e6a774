// Package cmd provides the root command and CLI setup for blackbox.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/blackbox/internal/adapter"
	"github.com/mouse-blink/blackbox/internal/controller"
	"github.com/mouse-blink/blackbox/internal/domain"
	m "github.com/mouse-blink/blackbox/internal/model"
)

const defaultConfigPath = "blackbox.yaml"

var ui controller.UI
var logger = zerolog.Nop()

var configFlag string
var verboseFlag bool
var wireFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blackbox",
		Short: "Decide which debuggee sources are skipped while stepping",
		Long: `Blackbox resolves the skipFiles configuration of a debugging session into
the patterns and per-script ranges a JavaScript engine uses to step over
library code.

The session file lists the skipFiles globs and regexes together with the
scripts the engine has parsed and the authored sources of their source maps.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger = newLogger(cmd.ErrOrStderr(), verboseFlag)
			ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", defaultConfigPath, "session file with skipFiles and parsed scripts")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every engine command")
	cmd.PersistentFlags().BoolVar(&wireFlag, "wire", false, "print the protocol messages sent to the engine")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: !controller.IsTTY(out)}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// environment is one debugging session assembled from a session file.
type environment struct {
	manifest *adapter.Manifest
	engine   *adapter.RecordingEngine
	session  *domain.Session
}

func loadEnvironment(cmd *cobra.Command, options ...domain.Option) (*environment, error) {
	cfg, err := adapter.LoadSessionConfig(m.Path(configFlag))
	if err != nil {
		return nil, err
	}

	var wire io.Writer
	if wireFlag {
		wire = cmd.OutOrStdout()
	}

	manifest := adapter.NewManifest(cfg.Scripts)
	engine := adapter.NewRecordingEngine(adapter.NewCDPEngine(adapter.NewLoopbackTransport(wire, cfg.UnsupportedEngine)))
	options = append([]domain.Option{domain.WithLogger(logger)}, options...)
	session := domain.NewSession(manifest, manifest, adapter.NewPrefixPathTransformer(cfg.PathMapping), engine, options...)

	session.Initialize(cmd.Context(), cfg.SkipFiles, cfg.SkipFileRegExps)

	logger.Debug().
		Str("config", configFlag).
		Int("scripts", len(cfg.Scripts)).
		Int("patterns", len(session.Patterns())).
		Msg("session loaded")

	return &environment{manifest: manifest, engine: engine, session: session}, nil
}

func toPaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
