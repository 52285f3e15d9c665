package path

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

var convertFrom string

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "",
		"platform the input paths were written for (default: host)")
	Cmd.AddCommand(normalizeCmd, convertCmd, joinCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path>...",
	Short: "Print the normalized form of each path",
	Example: `  pathpick path normalize 'a\\b//c/../d'
  pathpick path normalize --target windows /srv/data/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := target()
		if err != nil {
			return err
		}
		out := make([]string, len(args))
		for i, a := range args {
			out[i] = pathutil.NormalizeFor(a, t)
		}
		return printLines(cmd.OutOrStdout(), out...)
	},
}

var convertCmd = &cobra.Command{
	Use:     "convert <path>...",
	Short:   "Rewrite paths from one platform's syntax to another's",
	Example: `  pathpick path convert --from windows --target linux 'C:\tmp\a.txt'`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := pathutil.ParsePlatform(convertFrom)
		if err != nil {
			return errors.NewUserError(err, "Valid platforms: windows, macos, linux")
		}
		to, err := target()
		if err != nil {
			return err
		}
		out := make([]string, len(args))
		for i, a := range args {
			out[i] = pathutil.Convert(a, from, to)
		}
		return printLines(cmd.OutOrStdout(), out...)
	},
}

var joinCmd = &cobra.Command{
	Use:     "join <segment>...",
	Short:   "Join segments into one normalized path",
	Example: `  pathpick path join /srv data ../logs app.log`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := target()
		if err != nil {
			return err
		}
		return printLines(cmd.OutOrStdout(), pathutil.JoinFor(t, args...))
	},
}
