package path

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

var validSilent bool

func init() {
	validCmd.Flags().BoolVarP(&validSilent, "silent", "s", false,
		"print nothing, report through the exit status only")
	Cmd.AddCommand(validCmd)
}

var validCmd = &cobra.Command{
	Use:   "valid <path>...",
	Short: "Check paths against Windows naming rules",
	Long: `Check paths against Windows naming rules: no more than 260 characters,
none of <>:"|?* or control characters (a drive colon is allowed), and no
reserved device name such as CON or LPT1 as the last element.

Exit codes:
  0 - All paths are valid
  1 - At least one path is invalid`,
	Example: `  pathpick path valid report.txt 'C:\data\aux'
  pathpick path valid --silent "$name" && echo ok`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		invalid := 0
		for _, a := range args {
			err := pathutil.Validate(a)
			if err != nil {
				invalid++
			}
			if validSilent {
				continue
			}
			if err != nil {
				fmt.Fprintf(w, "invalid\t%v\n", err)
			} else {
				fmt.Fprintf(w, "ok\t%s\n", a)
			}
		}
		if invalid > 0 {
			return errors.NewExitError(nil, errors.ExitUser)
		}
		return nil
	},
}
