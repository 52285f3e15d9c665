// Package path provides the path command group, a command-line front end
// to the pathutil normalization helpers.
package path

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/cmd/pathpick/commands/flags"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

// Cmd is the path command that groups the path helpers.
var Cmd = &cobra.Command{
	Use:   "path",
	Short: "Normalize, inspect and validate paths",
	Long: `Normalize, inspect and validate paths without touching the filesystem.

Every helper accepts either separator, collapses repeated separators,
drops trailing separators and preserves drive letters. Printed paths
use the separator of the target platform, chosen with --target, the
picker.target_platform config key, or the host.`,
	Example: `  # Normalize for the host
  pathpick path normalize ./src//main.go

  # Rewrite a Windows path for macOS
  pathpick path convert --from windows --target macos 'C:\Users\me\notes.txt'

  # Shorten a path for a status line
  pathpick path display --max 30 /home/me/projects/pathpick/README.md

  See Also:
    pathpick path valid     - Check a path against Windows naming rules
    pathpick path rel       - Relative path between two paths
    pathpick path platform  - Show the detected platform`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	// Errors are reported once, by main, whether the group runs under
	// the root command or on its own.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// target resolves the platform printed paths are written for.
func target() (pathutil.Platform, error) {
	return flags.TargetPlatform()
}

// printLines writes each line to w.
func printLines(w io.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
