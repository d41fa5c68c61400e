// Package commands implements the CLI commands for availgen.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/cmd"
	"github.com/availgen/availgen/internal/config"
	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/logging"
	"github.com/availgen/availgen/internal/target"
)

// Values of the persistent flags, bound in init.
var (
	cfgFile   string
	verbosity int
	quiet     bool
	logFormat string
	logFile   string
)

// Outcome of the config load that cobra.OnInitialize runs before any
// command. checkConfigLoad decides whether the error matters.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: config.yaml in the working directory, then the XDG config dir)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"raise log verbosity, repeatable (-vv for debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"log errors only")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log output format, text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"append JSON logs to this file as well")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("availgen version {{.Version}}\n")

	// main prints errors itself, with exit codes and suggestions attached.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Initializers cannot return errors; the outcome is held for
	// checkConfigLoad to inspect once the command is known.
	cfg, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "availgen",
	Short: "Resolve and render platform availability for API declarations",
	Long: `availgen resolves the platform availability of API declarations
against a set of configured deployment targets.

Declarations arrive as YAML or JSON files carrying structured
availability records per platform: introduced, deprecated and
obsoleted versions, or an unavailable marker. availgen merges the
records of declarations that share a name, folds them over the
configured deployment windows, and renders the outcome as doc
comment lines, Clang-style availability attributes, and runtime
guard expressions.

Configuration lives in config.yaml, looked up in the working
directory and then the XDG config directory. Use --config to point
at an explicit file.`,
	Example: `  # Create a starter configuration
  availgen init

  # Resolve a declarations file against the configured targets
  availgen resolve decls.yaml

  # Emit a header and a manifest
  availgen generate decls.yaml --header avail.h --manifest avail.yaml

  # Lint a declarations file
  availgen check decls.yaml

  See Also: availgen targets, availgen inspect`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoad(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging builds the process logger from the verbosity flags,
// installs it as the slog default and plants it in the command context.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet conflicts with --verbose"),
			"Drop one of the two flags")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// AVAILGEN_DEBUG raises verbosity when no -v flag was given.
		if v == 0 {
			switch os.Getenv("AVAILGEN_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "Check that the --log-file path is writable")
		}
		// The file sink is always JSON, whatever --log-format says.
		handler = logging.NewMultiHandler(handler, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfigLoad surfaces configuration errors captured during
// initialization. help and version must work without any configuration,
// and init exists to replace a broken or missing config file.
func checkConfigLoad(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "version", "init":
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// GetConfig returns the configuration loaded during initialization.
// Before initialization, or after a failed load, it falls back to the
// built-in defaults so commands always see a usable configuration.
func GetConfig() *config.Config {
	if cfg == nil {
		return &config.Config{
			Version:       config.SupportedVersion,
			CheckFunction: config.DefaultCheckFunction,
			Targets:       config.DefaultTargets(),
		}
	}
	return cfg
}

// activeTargets returns the deployment windows resolution runs against.
func activeTargets() target.Targets {
	return GetConfig().TargetWindows()
}

// Execute runs availgen and returns whatever error the selected
// command produced.
func Execute() error {
	return rootCmd.Execute()
}
