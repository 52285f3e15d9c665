package commands

import "github.com/thoreinstein/pathpick/cmd/pathpick/commands/path"

func init() {
	rootCmd.AddCommand(path.Cmd)
}
