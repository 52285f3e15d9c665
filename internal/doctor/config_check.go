package doctor

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/fileutil"
)

// configFilePerm is the permission config files are repaired to.
const configFilePerm os.FileMode = 0o600

// ConfigCheck validates the config file and its permissions.
type ConfigCheck struct {
	// Path is the config file to inspect. Empty means defaults are in use.
	Path string

	permIssue bool
}

var (
	_ Check = (*ConfigCheck)(nil)
	_ Fixer = (*ConfigCheck)(nil)
)

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run executes the check.
func (c *ConfigCheck) Run() *CheckResult {
	c.permIssue = false
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.Path},
	}

	if c.Path == "" {
		result.Status = SeverityInfo
		result.Message = "no config file; using defaults"
		return result
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = fmt.Sprintf("no config file at %s; using defaults", c.Path)
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat %s: %v", c.Path, err)
		return result
	}

	data, err := fileutil.ReadFileWithLimit(c.Path, 0)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read %s: %v", c.Path, err)
		return result
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		result.Status = SeverityError
		result.Message = "YAML syntax error: " + err.Error()
		result.FixHint = "fix the syntax with: pathpick config edit"
		return result
	}

	if err := cfg.Validate(); err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		result.FixHint = "correct the value with: pathpick config set <key> <value>"
		return result
	}

	mode := info.Mode().Perm()
	result.Details["permissions"] = fmt.Sprintf("%04o", mode)
	if runtime.GOOS != "windows" && mode&0o022 != 0 {
		c.permIssue = true
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%s is writable by other users (%04o)", c.Path, mode)
		result.Fixable = true
		result.FixHint = fmt.Sprintf("run: pathpick doctor --fix (chmod %04o)", configFilePerm)
		return result
	}

	result.Status = SeverityPass
	result.Message = c.Path + " is valid"
	return result
}

// CanFix implements Fixer.
func (c *ConfigCheck) CanFix() bool {
	return c.permIssue
}

// Fix implements Fixer.
func (c *ConfigCheck) Fix() []FixResult {
	if !c.permIssue {
		return nil
	}
	res := chmodFix(c.Path, configFilePerm)
	if res.Fixed {
		c.permIssue = false
	}
	return []FixResult{res}
}
