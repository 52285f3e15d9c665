package path

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

func init() {
	Cmd.AddCommand(dirnameCmd, basenameCmd, extCmd, splitCmd, absCmd)
}

var dirnameCmd = &cobra.Command{
	Use:     "dirname <path>",
	Short:   "Print all but the last element of a path",
	Example: `  pathpick path dirname /srv/data/app.log`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := target()
		if err != nil {
			return err
		}
		return printLines(cmd.OutOrStdout(), pathutil.NormalizeFor(pathutil.Dir(args[0]), t))
	},
}

var basenameCmd = &cobra.Command{
	Use:     "basename <path>",
	Short:   "Print the last element of a path",
	Example: `  pathpick path basename 'C:\Users\me\notes.txt'`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLines(cmd.OutOrStdout(), pathutil.Base(args[0]))
	},
}

var extCmd = &cobra.Command{
	Use:     "ext <path>",
	Short:   "Print the extension of a path, including the dot",
	Example: `  pathpick path ext archive.tar.gz`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLines(cmd.OutOrStdout(), pathutil.Ext(args[0]))
	},
}

var splitCmd = &cobra.Command{
	Use:   "split <path>",
	Short: "Print the components of a path, one per line",
	Long: `Print the components of a path, one per line. An absolute path starts
with its root ("/" or a drive such as "C:/").`,
	Example: `  pathpick path split /srv/data/app.log`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLines(cmd.OutOrStdout(), pathutil.Split(args[0])...)
	},
}

var absCmd = &cobra.Command{
	Use:     "abs <path>",
	Short:   "Print whether a path is absolute",
	Example: `  pathpick path abs 'D:/games'`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLines(cmd.OutOrStdout(), strconv.FormatBool(pathutil.IsAbsolute(args[0])))
	},
}
