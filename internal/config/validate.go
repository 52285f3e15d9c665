package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidBridge indicates an unrecognized dialog backend.
	ErrInvalidBridge = errors.New("invalid picker bridge")

	// ErrInvalidPlatform indicates an unrecognized target platform.
	ErrInvalidPlatform = errors.New("invalid target platform")

	// ErrInvalidRoot indicates a malformed chooser root.
	ErrInvalidRoot = errors.New("invalid picker root")

	// ErrInvalidMaxLength indicates a non-positive display width.
	ErrInvalidMaxLength = errors.New("display max_length must be positive")
)

// Validate checks a Config for validity. The first problem found is
// returned as a *FieldError.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Version != DefaultVersion {
		return &FieldError{Field: "version", Value: strconv.Itoa(c.Version), Err: ErrUnsupportedVersion}
	}

	if !dialog.ValidSelection(c.Picker.Bridge) {
		return &FieldError{Field: "picker.bridge", Value: c.Picker.Bridge, Err: ErrInvalidBridge}
	}

	if c.Picker.TargetPlatform != "" {
		if _, err := pathutil.ParsePlatform(c.Picker.TargetPlatform); err != nil {
			return &FieldError{Field: "picker.target_platform", Value: c.Picker.TargetPlatform, Err: ErrInvalidPlatform}
		}
	}

	if strings.ContainsRune(c.Picker.Root, '\x00') {
		return &FieldError{Field: "picker.root", Value: c.Picker.Root, Err: ErrInvalidRoot}
	}

	if c.Display.MaxLength <= 0 {
		return &FieldError{Field: "display.max_length", Value: strconv.Itoa(c.Display.MaxLength), Err: ErrInvalidMaxLength}
	}

	return nil
}

// Keys returns every settable config key in sorted order.
func Keys() []string {
	keys := []string{
		"version",
		"picker.bridge",
		"picker.sandbox",
		"picker.root",
		"picker.target_platform",
		"display.max_length",
	}
	slices.Sort(keys)
	return keys
}

// ValidKey reports whether key is a known config key.
func ValidKey(key string) bool {
	return slices.Contains(Keys(), key)
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
