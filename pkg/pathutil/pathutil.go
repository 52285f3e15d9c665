package pathutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical returns the canonical forward-slash form of path.
// It returns an empty string for empty or whitespace-only input.
func Canonical(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return ""
	}

	p = strings.ReplaceAll(p, `\`, "/")
	p = collapseSeparators(p)

	// Strip trailing slashes (unless it's a root) and the whitespace they
	// uncover until neither remains, so "a /" and "a" canonicalize alike.
	for len(p) > 1 && strings.HasSuffix(p, "/") && !isDriveRoot(p) {
		p = strings.TrimSpace(p[:len(p)-1])
	}

	return norm.NFC.String(p)
}

// Normalize returns the canonical form of path using the separator of the
// current platform.
func Normalize(path string) string {
	return NormalizeFor(path, DetectPlatform())
}

// NormalizeFor returns the canonical form of path using the separator of
// target.
func NormalizeFor(path string, target Platform) string {
	return emit(Canonical(path), target)
}

// Convert re-emits path, written for platform from, in the syntax of
// platform to. Parsing accepts either separator regardless of from, so a
// drive prefix such as "C:" survives in both directions.
func Convert(path string, from, to Platform) string {
	return emit(Canonical(path), to)
}

// IsAbsolute reports whether path is absolute in Windows ("C:\", "C:/") or
// Unix ("/") syntax.
func IsAbsolute(path string) bool {
	if path == "" {
		return false
	}
	if hasDriveRoot(path) {
		return true
	}
	return path[0] == '/'
}

// Join joins path segments with the separator of the current platform.
// Empty segments are ignored.
func Join(segments ...string) string {
	return JoinFor(DetectPlatform(), segments...)
}

// JoinFor joins path segments with the separator of target.
// Empty segments are ignored.
func JoinFor(target Platform, segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if c := Canonical(s); c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return emit(Canonical(strings.Join(parts, "/")), target)
}

// Split returns the components of path. An absolute path yields its root
// ("/" or "C:/") as the first component, so that Join(Split(p)...) returns
// the normalized form of p.
func Split(path string) []string {
	c := Canonical(path)
	if c == "" {
		return nil
	}

	var root string
	switch {
	case hasDrivePrefix(c) && len(c) >= 3 && c[2] == '/':
		root, c = c[:3], c[3:]
	case c[0] == '/':
		root, c = "/", c[1:]
	}

	var parts []string
	if root != "" {
		parts = append(parts, root)
	}
	for s := range strings.SplitSeq(c, "/") {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// Dir returns all but the last element of path, using the separator of the
// current platform. Roots are preserved: Dir("/a") is "/" and Dir("C:/a")
// is "C:/" rather than "C:".
func Dir(path string) string {
	c := Canonical(path)
	i := strings.LastIndex(c, "/")
	if i < 0 {
		return ""
	}

	target := DetectPlatform()
	if i == 0 {
		return emit("/", target)
	}
	if hasDrivePrefix(c) && i == 2 {
		return emit(c[:3], target)
	}
	return emit(c[:i], target)
}

// Base returns the last element of path. It returns an empty string for a
// root.
func Base(path string) string {
	c := Canonical(path)
	return c[strings.LastIndex(c, "/")+1:]
}

// Ext returns the extension of the last element of path, including the
// leading dot. Dotfiles such as ".gitignore" have no extension.
func Ext(path string) string {
	base := Base(path)
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return ""
	}
	return base[dot:]
}

// Resolve returns rel unchanged when it is absolute, and otherwise joins it
// onto base.
func Resolve(base, rel string) string {
	if IsAbsolute(rel) {
		return rel
	}
	return Join(base, rel)
}

// RelativeTo returns the forward-slash path that leads from directory from
// to to. Identical paths yield "."; when the paths share no components and
// to is absolute, the canonical form of to is returned.
func RelativeTo(from, to string) string {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return ""
	}

	fromParts := Split(from)
	toParts := Split(to)

	common := 0
	for common < len(fromParts) && common < len(toParts) && fromParts[common] == toParts[common] {
		common++
	}

	if common == 0 && IsAbsolute(Canonical(to)) {
		return Canonical(to)
	}

	rel := make([]string, 0, len(fromParts)-common+len(toParts)-common)
	for range len(fromParts) - common {
		rel = append(rel, "..")
	}
	rel = append(rel, toParts[common:]...)

	if len(rel) == 0 {
		return "."
	}
	return strings.Join(rel, "/")
}

func emit(canonical string, target Platform) string {
	if target == Windows {
		return strings.ReplaceAll(canonical, "/", `\`)
	}
	return canonical
}

func collapseSeparators(p string) string {
	if !strings.Contains(p, "//") {
		return p
	}
	var b strings.Builder
	b.Grow(len(p))
	prevSlash := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func hasDrivePrefix(p string) bool {
	return len(p) >= 2 && isASCIILetter(p[0]) && p[1] == ':'
}

// hasDriveRoot reports whether p starts with a drive letter followed by
// either separator, as in `C:/` or `C:\`.
func hasDriveRoot(p string) bool {
	return len(p) >= 3 && hasDrivePrefix(p) && (p[2] == '/' || p[2] == '\\')
}

func isDriveRoot(p string) bool {
	return len(p) == 3 && hasDrivePrefix(p) && p[2] == '/'
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
