// Package app contains the Cobra command tree for pathkit.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/internal/log"
	"github.com/gobeaver/pathkit/internal/output"

	// Register every codec.
	_ "github.com/gobeaver/pathkit/codec/ctycodec"
	_ "github.com/gobeaver/pathkit/codec/jsoncodec"
	_ "github.com/gobeaver/pathkit/codec/msgpackcodec"
	_ "github.com/gobeaver/pathkit/codec/yamlcodec"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
}

// app holds the state shared by every subcommand of one root command.
type app struct {
	cfgFile  string
	settings *Settings
	logger   *slog.Logger
	reporter pathkit.Reporter
}

// options returns the constructor options derived from the loaded settings.
func (a *app) options() []pathkit.Option {
	cfg := pathkit.Config{Validate: a.settings.Validate}
	return cfg.Options(a.reporter)
}

func (a *app) absolutePath(text string) pathkit.AbsolutePath {
	return pathkit.NewAbsolutePath(text, a.options()...)
}

// NewRootCmd builds the pathkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pathkit",
		Short: "Typed absolute paths and directories",
		Long: `pathkit checks, normalizes, serializes and stores typed filesystem paths.

Paths are checked for absoluteness when they are built. A path that fails the
check is logged with a stack trace and still used as given; pass --strict to
'check' to turn failures into an error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       appVersion,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file path")
	flags.String("codec", "", "Serialization format (json, yaml, msgpack, cty)")
	flags.Bool("no-validate", false, "Skip the absoluteness check when building paths")
	flags.String("log-level", "", "Set the log level (debug, info, warn, error)")
	flags.String("log-format", "", "Set the log format (text, logfmt, json)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("store", "", "Path to the binding database")
	flags.String("checksum", "", "Checksum algorithm for fingerprints")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		s, err := LoadSettings(a.cfgFile, cc.Flags())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.settings = s

		h, err := log.CreateHandler(cc.ErrOrStderr(), s.LogLevel, s.LogFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		a.logger = slog.New(h)
		a.reporter = pathkit.NewSlogReporter(a.logger)

		if s.NoColor {
			output.SetNoColor(true)
		} else {
			output.AutoColor(cc.OutOrStdout())
		}

		a.logger.Debug("settings loaded",
			slog.String("codec", s.Codec),
			slog.Bool("validate", s.Validate),
			slog.String("store", s.StorePath),
		)
		return nil
	}

	cmd.AddCommand(
		newCheckCmd(a),
		newDirCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newCodecsCmd(),
		newSumCmd(a),
		newStoreCmd(a),
	)

	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
