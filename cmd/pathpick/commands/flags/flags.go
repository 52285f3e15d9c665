// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages such as path.
package flags

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

// targetFlag holds the value of the --target flag.
var targetFlag string

// GetTargetFlag returns the current value of the --target flag.
func GetTargetFlag() string {
	return targetFlag
}

// SetTargetFlag sets the target flag value.
// This is used by the root command after parsing and by tests.
func SetTargetFlag(target string) {
	targetFlag = target
}

// TargetPlatform resolves the platform printed paths are written for: the
// --target flag, then the picker.target_platform config key, then the host.
func TargetPlatform() (pathutil.Platform, error) {
	name := targetFlag
	if name == "" {
		name = viper.GetString("picker.target_platform")
	}
	if name == "" {
		return pathutil.DetectPlatform(), nil
	}

	p, err := pathutil.ParsePlatform(name)
	if err != nil {
		return "", errors.NewUserError(err, "Valid platforms: windows, macos, linux")
	}
	return p, nil
}
