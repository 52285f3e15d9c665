package path

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

var platformJSON bool

func init() {
	platformCmd.Flags().BoolVar(&platformJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(platformCmd)
}

// platformInfo is the JSON form of the platform report.
type platformInfo struct {
	Host      string `json:"host"`
	Target    string `json:"target"`
	Separator string `json:"separator"`
}

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected and target platforms",
	Example: `  pathpick path platform
  pathpick path platform --target windows --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := target()
		if err != nil {
			return err
		}
		info := platformInfo{
			Host:      pathutil.DetectPlatform().String(),
			Target:    t.String(),
			Separator: pathutil.Separator(t),
		}

		w := cmd.OutOrStdout()
		if platformJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return errors.Wrap(err, "encoding JSON")
			}
			return nil
		}

		fmt.Fprintf(w, "host:      %s\n", info.Host)
		fmt.Fprintf(w, "target:    %s\n", info.Target)
		fmt.Fprintf(w, "separator: %s\n", info.Separator)
		return nil
	},
}
