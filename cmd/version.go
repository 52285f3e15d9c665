// Package cmd holds the build metadata of the pathpick binary, set with
// -ldflags "-X github.com/thoreinstein/pathpick/cmd.Version=...".
package cmd

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
