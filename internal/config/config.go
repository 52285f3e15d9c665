// Package config provides configuration management for pathpick using Viper.
package config

import (
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/paths"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "PATHPICK"

// envKeyReplacer maps nested keys to environment names, so picker.root is
// read from PATHPICK_PICKER_ROOT.
var envKeyReplacer = strings.NewReplacer(".", "_")

// Default values.
const (
	DefaultVersion          = 1
	DefaultRoot             = "."
	DefaultDisplayMaxLength = 50
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int           `mapstructure:"version" yaml:"version" toml:"version" json:"version"`
	Picker  PickerConfig  `mapstructure:"picker" yaml:"picker" toml:"picker" json:"picker"`
	Display DisplayConfig `mapstructure:"display" yaml:"display" toml:"display" json:"display"`
}

// PickerConfig controls which selection mechanisms are used.
type PickerConfig struct {
	// Bridge is a dialog backend name, "auto" or "none".
	Bridge string `mapstructure:"bridge" yaml:"bridge" toml:"bridge" json:"bridge"`
	// Sandbox enables the terminal chooser.
	Sandbox bool `mapstructure:"sandbox" yaml:"sandbox" toml:"sandbox" json:"sandbox"`
	// Root is the directory the terminal chooser browses.
	Root string `mapstructure:"root" yaml:"root" toml:"root" json:"root"`
	// TargetPlatform selects the separator of printed paths. Empty means
	// the host platform.
	TargetPlatform string `mapstructure:"target_platform" yaml:"target_platform" toml:"target_platform" json:"target_platform"`
}

// DisplayConfig controls how paths are shortened for display.
type DisplayConfig struct {
	MaxLength int `mapstructure:"max_length" yaml:"max_length" toml:"max_length" json:"max_length"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: DefaultVersion,
		Picker: PickerConfig{
			Bridge:  dialog.Auto,
			Sandbox: true,
			Root:    DefaultRoot,
		},
		Display: DisplayConfig{
			MaxLength: DefaultDisplayMaxLength,
		},
	}
}

// Init initializes Viper with default configuration.
// Any previous Viper state is discarded. Call this once at application
// startup before accessing config values.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Defaults
	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("picker.bridge", def.Picker.Bridge)
	viper.SetDefault("picker.sandbox", def.Picker.Sandbox)
	viper.SetDefault("picker.root", def.Picker.Root)
	viper.SetDefault("picker.target_platform", def.Picker.TargetPlatform)
	viper.SetDefault("display.max_length", def.Display.MaxLength)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load: defaults are fine.
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the config file Viper read, or "" when running on
// defaults.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
