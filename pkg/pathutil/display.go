package pathutil

import "strings"

const ellipsis = "..."

// FormatForDisplay shortens path to at most maxLength characters. Paths
// with three or more segments collapse to "first/.../last"; anything still
// too long is truncated with a trailing ellipsis. The separator already used
// by path is kept.
func FormatForDisplay(path string, maxLength int) string {
	if path == "" || maxLength <= 0 {
		return ""
	}

	runes := []rune(path)
	if len(runes) <= maxLength {
		return path
	}

	sep := "/"
	if strings.Contains(path, `\`) && !strings.Contains(path, "/") {
		sep = `\`
	}

	parts := strings.Split(path, sep)
	if len(parts) >= 3 {
		collapsed := parts[0] + sep + ellipsis + sep + parts[len(parts)-1]
		if len([]rune(collapsed)) <= maxLength {
			return collapsed
		}
	}

	return truncate(runes, maxLength)
}

func truncate(runes []rune, maxLength int) string {
	if maxLength <= len(ellipsis) {
		return ellipsis[:maxLength]
	}
	return string(runes[:maxLength-len(ellipsis)]) + ellipsis
}
