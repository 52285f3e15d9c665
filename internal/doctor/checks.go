package doctor

import (
	"fmt"
	"os"

	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

// PlatformCheck reports the host platform and the platform printed paths
// are normalized for.
type PlatformCheck struct {
	// Host is the detected platform; empty means pathutil.DetectPlatform.
	Host pathutil.Platform
	// Target is the configured target platform name; empty means Host.
	Target string
}

var _ Check = (*PlatformCheck)(nil)

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string { return "platform" }

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string { return "host" }

// Run executes the check.
func (c *PlatformCheck) Run() *CheckResult {
	host := c.Host
	if host == "" {
		host = pathutil.DetectPlatform()
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"host":      string(host),
			"separator": pathutil.Separator(host),
		},
	}

	target := host
	if c.Target != "" {
		parsed, err := pathutil.ParsePlatform(c.Target)
		if err != nil {
			result.Status = SeverityError
			result.Message = fmt.Sprintf("unknown target platform %q", c.Target)
			result.FixHint = "set picker.target_platform to windows, macos or linux"
			return result
		}
		target = parsed
	}
	result.Details["target"] = string(target)

	if host == pathutil.Unknown {
		result.Status = SeverityWarning
		result.Message = "unrecognized host OS; paths use / separators"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("host %s, printing %s paths (%s)", host, target, pathutil.Separator(target))
	return result
}

// BridgeCheck looks for a native dialog program.
type BridgeCheck struct {
	Env       dialog.Env
	Selection string
}

var _ Check = (*BridgeCheck)(nil)

// Name returns the unique identifier for this check.
func (c *BridgeCheck) Name() string { return "native-dialog" }

// Category returns the grouping for this check.
func (c *BridgeCheck) Category() string { return "picker" }

// Run executes the check.
func (c *BridgeCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"selection": c.Selection},
	}

	if c.Selection == dialog.None {
		result.Status = SeverityInfo
		result.Message = "native dialogs disabled by config"
		return result
	}

	n, err := dialog.Detect(c.Env, c.Selection)
	if err != nil {
		result.Status = SeverityWarning
		result.Message = "no native dialog available: " + err.Error()
		result.FixHint = bridgeHint(c.Env.GOOS)
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("using %s (%s)", n.Backend(), n.Program())
	result.Details["backend"] = string(n.Backend())
	result.Details["program"] = n.Program()
	return result
}

func bridgeHint(goos string) string {
	switch goos {
	case "darwin":
		return "osascript ships with macOS; check that /usr/bin is on PATH"
	case "windows":
		return "make sure powershell.exe is on PATH"
	default:
		return "install zenity or kdialog and run inside a graphical session"
	}
}

// OpenerCheck looks for the program used by `pathpick open`.
type OpenerCheck struct {
	Env dialog.Env
}

var _ Check = (*OpenerCheck)(nil)

// Name returns the unique identifier for this check.
func (c *OpenerCheck) Name() string { return "opener" }

// Category returns the grouping for this check.
func (c *OpenerCheck) Category() string { return "host" }

// Run executes the check.
func (c *OpenerCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	o, err := dialog.DetectOpener(c.Env)
	if err != nil {
		result.Status = SeverityWarning
		result.Message = err.Error()
		result.FixHint = "install xdg-utils to open paths from the command line"
		return result
	}

	result.Status = SeverityPass
	result.Message = "opening paths with " + o.Program()
	result.Details = map[string]any{"program": o.Program()}
	return result
}

// SandboxCheck verifies the terminal chooser can run.
type SandboxCheck struct {
	Enabled     bool
	Interactive bool
	Root        string
}

var _ Check = (*SandboxCheck)(nil)

// Name returns the unique identifier for this check.
func (c *SandboxCheck) Name() string { return "terminal-chooser" }

// Category returns the grouping for this check.
func (c *SandboxCheck) Category() string { return "picker" }

// Run executes the check.
func (c *SandboxCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"root": c.Root, "interactive": c.Interactive},
	}

	if !c.Enabled {
		result.Status = SeverityInfo
		result.Message = "terminal chooser disabled by config"
		return result
	}

	info, err := os.Stat(c.Root)
	switch {
	case err != nil:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("chooser root %s is not readable: %v", c.Root, err)
		result.FixHint = "set picker.root to an existing directory"
		return result
	case !info.IsDir():
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("chooser root %s is not a directory", c.Root)
		result.FixHint = "set picker.root to an existing directory"
		return result
	}

	if !c.Interactive {
		result.Status = SeverityInfo
		result.Message = "no terminal attached; manual entry will be used"
		return result
	}

	result.Status = SeverityPass
	result.Message = "terminal chooser browses " + c.Root
	return result
}
