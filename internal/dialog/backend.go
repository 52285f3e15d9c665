package dialog

import (
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Backend names a dialog helper program.
type Backend string

// Supported backends.
const (
	BackendZenity     Backend = "zenity"
	BackendKDialog    Backend = "kdialog"
	BackendOSAScript  Backend = "osascript"
	BackendPowerShell Backend = "powershell"
)

// Selection keywords accepted alongside backend names.
const (
	Auto = "auto"
	None = "none"
)

var (
	// ErrNoBackend indicates no usable dialog program was found.
	ErrNoBackend = errors.New("no native dialog program available")

	// ErrUnknownBackend indicates an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown dialog backend")
)

// Backends returns every supported backend.
func Backends() []Backend {
	return []Backend{BackendZenity, BackendKDialog, BackendOSAScript, BackendPowerShell}
}

// ParseBackend parses a backend name.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Backends(), b) {
		return b, nil
	}
	return "", errors.Wrapf(ErrUnknownBackend, "%q", s)
}

// ValidSelection reports whether s is a backend name, Auto or None.
func ValidSelection(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case Auto, None, "":
		return true
	}
	_, err := ParseBackend(s)
	return err == nil
}

// Env is the view of the host used for detection.
type Env struct {
	GOOS     string
	LookPath func(file string) (string, error)
	Getenv   func(key string) string
}

// SystemEnv returns an Env backed by the running process.
func SystemEnv(goos string) Env {
	return Env{
		GOOS:     goos,
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
	}
}

// candidates lists backends in preference order for goos.
func candidates(goos string) []Backend {
	switch goos {
	case "darwin":
		return []Backend{BackendOSAScript}
	case "windows":
		return []Backend{BackendPowerShell}
	default:
		return []Backend{BackendZenity, BackendKDialog}
	}
}

// hasDisplay reports whether a graphical session is reachable. macOS and
// Windows always have one.
func hasDisplay(env Env) bool {
	switch env.GOOS {
	case "darwin", "windows":
		return true
	}
	return env.Getenv("DISPLAY") != "" || env.Getenv("WAYLAND_DISPLAY") != ""
}

// Detect finds a dialog program. selection is a backend name, Auto (or
// empty) to try the platform's candidates in order, or None.
func Detect(env Env, selection string, opts ...Option) (*Native, error) {
	selection = strings.ToLower(strings.TrimSpace(selection))

	var order []Backend
	switch selection {
	case None:
		return nil, errors.Wrap(ErrNoBackend, "native dialogs disabled")
	case Auto, "":
		order = candidates(env.GOOS)
	default:
		b, err := ParseBackend(selection)
		if err != nil {
			return nil, err
		}
		order = []Backend{b}
	}

	if !hasDisplay(env) {
		return nil, errors.Wrap(ErrNoBackend, "no graphical session")
	}

	for _, b := range order {
		program, err := env.LookPath(string(b))
		if err != nil {
			continue
		}
		return New(b, program, opts...), nil
	}
	return nil, errors.Wrapf(ErrNoBackend, "looked for %s", joinBackends(order))
}

func joinBackends(bs []Backend) string {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}
