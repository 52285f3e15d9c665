// Package config provides configuration management for the pathpick CLI.
//
// # Configuration File
//
// The default configuration file location is the pathpick directory under
// the XDG config home (~/.config/pathpick/config.yaml on Linux). Setting
// PATHPICK_CONFIG_DIR moves it. A config.yaml in the current directory
// takes precedence. The file uses YAML:
//
//	version: 1
//	picker:
//	  bridge: auto          # zenity, kdialog, osascript, powershell, none
//	  sandbox: true         # offer the terminal chooser
//	  root: ~/projects      # where the terminal chooser starts
//	  target_platform: ""   # windows, macos or linux; empty means host
//	display:
//	  max_length: 50
//
// Every key can be overridden from the environment with the PATHPICK_
// prefix, dots replaced by underscores: PATHPICK_PICKER_BRIDGE=none.
//
// # Loading Configuration
//
// Call [Init] once, then [Load]. An empty path searches the default
// locations and falls back to [Default] values; an explicit path must
// exist:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// Loaded configurations are validated; see [Config.Validate].
package config
