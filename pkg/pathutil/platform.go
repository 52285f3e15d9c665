package pathutil

import (
	"runtime"
	"strings"
	"sync"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Platform identifies the path syntax family of a host.
type Platform string

// Supported platforms.
const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
	Unknown Platform = "unknown"
)

// ErrUnknownPlatform indicates a platform name could not be parsed.
var ErrUnknownPlatform = errors.New("unknown platform")

var detected = sync.OnceValue(func() Platform {
	return platformFromGOOS(runtime.GOOS)
})

// DetectPlatform classifies the current host. The result is computed once
// and cached for the lifetime of the process.
func DetectPlatform() Platform {
	return detected()
}

func platformFromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin", "ios":
		return MacOS
	case "linux", "android":
		return Linux
	default:
		return Unknown
	}
}

// Platforms returns the platforms accepted by [ParsePlatform].
func Platforms() []Platform {
	return []Platform{Windows, MacOS, Linux}
}

// ParsePlatform parses a platform name. Common aliases ("win", "darwin",
// "mac", "osx", "unix") are accepted case-insensitively. An empty string
// yields the detected platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DetectPlatform(), nil
	case "windows", "win", "win32":
		return Windows, nil
	case "macos", "mac", "darwin", "osx":
		return MacOS, nil
	case "linux", "unix":
		return Linux, nil
	default:
		return Unknown, errors.Wrapf(ErrUnknownPlatform, "%q", s)
	}
}

// Separator returns the path separator used when emitting paths for p.
func Separator(p Platform) string {
	if p == Windows {
		return `\`
	}
	return "/"
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}
