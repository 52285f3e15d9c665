package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/editor"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/paths"
	"github.com/thoreinstein/pathpick/pkg/fileutil"
)

// configFilePerm is the mode config files are written with.
const configFilePerm = 0o600

var configListFormat string

func init() {
	configListCmd.Flags().StringVarP(&configListFormat, "format", "f", "yaml",
		"output format: yaml, toml, json")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pathpick configuration",
	Long: `Manage pathpick configuration stored in $XDG_CONFIG_HOME/pathpick/config.yaml.

Every key can also be set from the environment with the PATHPICK_ prefix,
dots replaced by underscores (PATHPICK_PICKER_BRIDGE=none).

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  pathpick config

  # Get a specific value
  pathpick config get picker.bridge

  # Disable native dialogs
  pathpick config set picker.bridge none

See Also: pathpick doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key, using dot notation for
nested keys.

Keys: ` + strings.Join(config.Keys(), ", "),
	Example: `  # Which dialog backend is configured
  pathpick config get picker.bridge

See Also: pathpick config set, pathpick config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

The value is validated before anything is written: picker.bridge must be
auto, none or a dialog program (zenity, kdialog, osascript, powershell),
picker.target_platform must be empty, windows, macos or linux, and
display.max_length must be positive.`,
	Example: `  # Always use kdialog
  pathpick config set picker.bridge kdialog

  # Browse the home directory in the terminal chooser
  pathpick config set picker.root ~

  # Print Windows paths
  pathpick config set picker.target_platform windows

See Also: pathpick config get, pathpick config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values, with defaults and environment overrides applied.`,
	Example: `  # List all configuration
  pathpick config list

  # As TOML
  pathpick config list --format toml

See Also: pathpick config get, pathpick config set`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, then $VISUAL, then nano or vi. A config file with default
values is created first if none exists. The file is validated after the
editor exits.`,
	Example: `  # Open config in default editor
  pathpick config edit

  # Open with specific editor
  EDITOR=nano pathpick config edit

See Also: pathpick config list, pathpick doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !config.ValidKey(key) {
		return unknownKeyError(key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if !config.ValidKey(key) {
		return unknownKeyError(key)
	}

	value, err := parseConfigValue(key, raw)
	if err != nil {
		return errors.NewUserError(err, fmt.Sprintf("Check the value given for %s", key))
	}
	viper.Set(key, value)

	cfg, err := viperConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.NewUserError(errors.Wrap(err, "validating config"),
			fmt.Sprintf("Run 'pathpick config set --help' for accepted values of %s", key))
	}

	path := configPath()
	if err := writeConfig(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	format, err := fileutil.ParseFormat(configListFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format yaml, toml or json")
	}

	cfg, err := viperConfig()
	if err != nil {
		return err
	}
	return printConfig(cmd.OutOrStdout(), cfg, format)
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := configPath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeConfig(path, config.Default()); err != nil {
			return err
		}
	}

	if err := editor.Open(cmd.Context(), cmd.ErrOrStderr(), path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}

	config.Init()
	if _, err := config.Load(path); err != nil {
		return errors.NewConfigError(err)
	}
	return nil
}

// parseConfigValue converts raw to the type stored under key.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case "version", "display.max_length":
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s must be a number, got %q", key, raw)
		}
		return n, nil
	case "picker.sandbox":
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s must be true or false, got %q", key, raw)
		}
		return b, nil
	default:
		return strings.TrimSpace(raw), nil
	}
}

// viperConfig decodes the current viper state.
func viperConfig() (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

func printConfig(w io.Writer, cfg *config.Config, format fileutil.Format) error {
	data, err := fileutil.Marshal(format, cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing config")
}

// configPath returns the file config commands read and write: --config,
// then the file viper loaded, then the default location.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if used := config.FileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

// writeConfig writes cfg to path as YAML, creating the directory.
func writeConfig(path string, cfg *config.Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, cfg, configFilePerm); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

func unknownKeyError(key string) error {
	return errors.NewUserError(
		errors.Wrapf(errors.ErrInvalidArgument, "unknown config key %q", key),
		"Valid keys: "+strings.Join(config.Keys(), ", "))
}
