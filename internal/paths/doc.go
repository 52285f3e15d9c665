// Package paths resolves the filesystem locations pathpick itself uses:
// the user's home directory and the XDG configuration directory.
//
// Unlike pkg/pathutil, which is pure string manipulation, functions here
// consult the environment.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance:
//
//	paths.ConfigDir()  // <ConfigHome>/pathpick
//	paths.ConfigFile() // <ConfigHome>/pathpick/config.yaml
package paths
