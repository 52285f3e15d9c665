package path

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

func init() {
	Cmd.AddCommand(resolveCmd, relCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <base> <path>",
	Short: "Resolve a path against a base directory",
	Long: `Resolve a path against a base directory. An absolute path is printed
as is, only normalized; a relative one is joined onto base.`,
	Example: `  pathpick path resolve /srv/app ../logs/app.log`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := target()
		if err != nil {
			return err
		}
		return printLines(cmd.OutOrStdout(), pathutil.NormalizeFor(pathutil.Resolve(args[0], args[1]), t))
	},
}

var relCmd = &cobra.Command{
	Use:   "rel <from-dir> <to>",
	Short: "Print the relative path from a directory to a path",
	Long: `Print the forward-slash path leading from directory from-dir to to.
Identical paths print "."; paths with nothing in common print to unchanged
when it is absolute.`,
	Example: `  pathpick path rel /srv/app /srv/logs/app.log`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLines(cmd.OutOrStdout(), pathutil.RelativeTo(args[0], args[1]))
	},
}
