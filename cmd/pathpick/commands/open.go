package commands

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
	"github.com/thoreinstein/pathpick/internal/paths"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a file or folder with the default application",
	Long: `Open a file or folder with the desktop's default application, using
xdg-open on Linux, open on macOS and the shell URL handler on Windows.
A leading ~ is expanded to the home directory.`,
	Example: `  # Open a folder in the file manager
  pathpick open ~/Downloads

  # Open whatever the user picks
  pathpick open "$(pathpick pick)"

  See Also: pathpick pick, pathpick doctor`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPath(cmd, dialog.SystemEnv(runtime.GOOS), args[0])
	},
}

func openPath(cmd *cobra.Command, env dialog.Env, target string, opts ...dialog.Option) error {
	p, err := paths.ExpandHome(target)
	if err != nil {
		return errors.Wrap(err, "expanding path")
	}
	if _, err := os.Stat(p); err != nil {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "%s", p), "Check the path and try again")
	}

	o, err := dialog.DetectOpener(env, opts...)
	if err != nil {
		return errors.NewSystemError(err, "Run: pathpick doctor")
	}

	logging.FromContext(cmd.Context()).Debug("opening path", "program", o.Program(), "path", p)
	return o.Open(cmd.Context(), p)
}
