package path

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

var displayMax int

func init() {
	displayCmd.Flags().IntVar(&displayMax, "max", 0,
		"maximum length (default: display.max_length)")
	Cmd.AddCommand(displayCmd)
}

var displayCmd = &cobra.Command{
	Use:   "display <path>",
	Short: "Shorten a path for display",
	Long: `Shorten a path to a maximum length. Paths with three or more elements
collapse to "first/.../last"; anything still too long is cut with "...".`,
	Example: `  pathpick path display --max 20 /home/me/projects/pathpick/README.md`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := displayMax
		if limit == 0 {
			limit = viper.GetInt("display.max_length")
		}
		if limit <= 0 {
			return errors.NewUserError(
				errors.Newf("invalid maximum length %d", limit),
				"Pass --max with a positive number")
		}
		return printLines(cmd.OutOrStdout(), pathutil.FormatForDisplay(args[0], limit))
	},
}
