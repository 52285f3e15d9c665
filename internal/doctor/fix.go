package doctor

import (
	"fmt"
	"os"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
type Fixer interface {
	// CanFix returns true if the last Run found fixable issues.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run.
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file or directory that was targeted for fixing.
	Path string `json:"path"`

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool `json:"fixed"`

	// Description explains what was fixed or why it couldn't be fixed.
	Description string `json:"description"`

	// Error contains the error if the fix failed.
	Error error `json:"-"`
}

// chmodFix sets path to perm.
func chmodFix(path string, perm os.FileMode) FixResult {
	result := FixResult{Path: path}
	if err := os.Chmod(path, perm); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", perm, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", perm, path)
		return result
	}
	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", perm)
	return result
}
