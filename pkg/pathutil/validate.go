package pathutil

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// MaxPathLength is the Windows MAX_PATH ceiling, enforced on every host.
const MaxPathLength = 260

// forbiddenChars are rejected anywhere in a path, except for the colon of a
// leading drive root such as `C:\` or `C:/`.
const forbiddenChars = `<>:"|?*`

// reservedNames are Windows device names that cannot be used as a file or
// folder name.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Validation errors. All of them match ErrInvalidPath via errors.Is.
var (
	// ErrInvalidPath is the common cause of every validation failure.
	ErrInvalidPath = errors.New("invalid path")

	ErrEmptyPath      = errors.Mark(errors.New("path is empty"), ErrInvalidPath)
	ErrPathTooLong    = errors.Mark(errors.Newf("path exceeds %d characters", MaxPathLength), ErrInvalidPath)
	ErrForbiddenChar  = errors.Mark(errors.New("path contains a forbidden character"), ErrInvalidPath)
	ErrReservedDevice = errors.Mark(errors.New("name is a reserved device name"), ErrInvalidPath)
)

// ValidationError describes why a path was rejected.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return e.Err.Error() + ": " + strconv.Quote(e.Path)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports a match for ErrInvalidPath so the standard library's
// errors.Is sees the marked cause too.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPath
}

// Validate checks path against Windows naming rules. It returns nil for a
// valid path and a *ValidationError otherwise.
func Validate(path string) error {
	if path == "" {
		return &ValidationError{Path: path, Err: ErrEmptyPath}
	}

	if utf8.RuneCountInString(path) > MaxPathLength {
		return &ValidationError{Path: path, Err: ErrPathTooLong}
	}

	for i, r := range path {
		if r < 0x20 {
			return &ValidationError{Path: path, Err: ErrForbiddenChar}
		}
		if !strings.ContainsRune(forbiddenChars, r) {
			continue
		}
		if r == ':' && i == 1 && hasDriveRoot(path) {
			continue
		}
		return &ValidationError{Path: path, Err: ErrForbiddenChar}
	}

	if _, ok := reservedNames[strings.ToUpper(Base(path))]; ok {
		return &ValidationError{Path: path, Err: ErrReservedDevice}
	}

	return nil
}

// IsValid reports whether path passes [Validate].
func IsValid(path string) bool {
	return Validate(path) == nil
}
