// Package commands implements the CLI commands for pathpick.
package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/cmd"
	"github.com/thoreinstein/pathpick/cmd/pathpick/commands/flags"
	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
)

// targetFlag holds the value of the --target flag.
var targetFlag string

// configFile holds the value of the --config flag.
var configFile string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig is the configuration read during initialization. It is nil
// when loading failed.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// configExempt lists commands that run even when the config is broken, so
// that it can be diagnosed and repaired.
var configExempt = map[string]bool{
	"help":    true,
	"version": true,
	"doctor":  true,
	"config":  true,
	"gen-doc": true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&targetFlag, "target", "t", "",
		"platform printed paths are written for: windows, macos, linux (default: host)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/pathpick/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("pathpick version {{.Version}}\n")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewUserError(err, "Run 'pathpick --help' for usage")
	})

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

// currentConfig returns the loaded configuration, or the defaults when
// loading failed.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.Default()
}

var rootCmd = &cobra.Command{
	Use:   "pathpick",
	Short: "Pick files and folders from scripts, in any environment",
	Long: `pathpick asks the user for a file or folder path and prints it.

It tries the best mechanism the host offers, in order: the native dialog
of the desktop (zenity, kdialog, osascript or PowerShell), a fuzzy chooser
in the terminal, and finally a plain typed prompt. Cancelling at any stage
stops the search and exits with status 1.

Selected paths are normalized for the target platform and validated
against Windows naming rules before they are printed. The path command
group exposes the same normalization helpers directly.`,
	Example: `  # Pick a file
  pathpick pick

  # Pick a folder and cd into it
  cd "$(pathpick pick --mode folder)"

  # Normalize a path for Windows
  pathpick path normalize --target windows ./docs//guide.md

  # Check which mechanisms are available
  pathpick doctor

  See Also: pathpick pick, pathpick path, pathpick doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.New("cannot use --quiet and --verbose together"),
			"Pass either -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PATHPICK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
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

// checkConfig reports config load errors and publishes the --target flag.
func checkConfig(cmd *cobra.Command, _ []string) error {
	flags.SetTargetFlag(targetFlag)

	if configLoadErr == nil || isConfigExempt(cmd) {
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

// isConfigExempt reports whether cmd or one of its parents is in
// configExempt.
func isConfigExempt(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if configExempt[c.Name()] {
			return true
		}
	}
	return false
}

// Execute runs the root command. An interrupt cancels the command's
// context, which stops a running dialog.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
