package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/pathpick/cmd/pathpick/commands/flags"
	"github.com/thoreinstein/pathpick/internal/paths"
)

// isolate points config lookup at a fresh directory and makes it the
// working directory. It returns the directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Chdir(dir)
	return dir
}

// resetFlags restores every package-level flag variable to its default.
func resetFlags() {
	targetFlag = ""
	configFile = ""
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""

	pickMode = "file"
	pickMultiple = false
	pickAccept = "*"
	pickTitle = ""
	pickRoot = ""
	pickJSON = false
	pickAttempts = 3

	doctorJSON = false
	doctorQuiet = false
	doctorVerbose = false
	doctorFix = false

	configListFormat = "yaml"

	loadedConfig = nil
	configLoadErr = nil
	flags.SetTargetFlag("")
}

// execute runs the root command with args and returns what it wrote to
// stdout. Config lookup must already be isolated.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		viper.Reset()
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}
