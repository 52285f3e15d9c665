package dialog

import (
	"mime"
	"slices"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/picker"
)

func fileArgs(b Backend, opts picker.FileOptions) ([]string, error) {
	globs := acceptGlobs(opts.AcceptPatterns())
	switch b {
	case BackendZenity:
		return zenityFileArgs(opts, globs), nil
	case BackendKDialog:
		return kdialogFileArgs(opts, globs), nil
	case BackendOSAScript:
		return osascriptArgs(osascriptFileScript(opts, globs)), nil
	case BackendPowerShell:
		return powershellArgs(powershellFileScript(opts, globs)), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", b)
	}
}

func folderArgs(b Backend, title string) ([]string, error) {
	switch b {
	case BackendZenity:
		args := []string{"--file-selection", "--directory"}
		if title != "" {
			args = append(args, "--title="+title)
		}
		return args, nil
	case BackendKDialog:
		var args []string
		if title != "" {
			args = append(args, "--title", title)
		}
		return append(args, "--getexistingdirectory", "."), nil
	case BackendOSAScript:
		return osascriptArgs([]string{
			"POSIX path of (choose folder" + osascriptPrompt(title) + ")",
		}), nil
	case BackendPowerShell:
		return powershellArgs([]string{
			"Add-Type -AssemblyName System.Windows.Forms",
			"$d = New-Object System.Windows.Forms.FolderBrowserDialog",
			"$d.Description = " + psQuote(title),
			"if ($d.ShowDialog() -ne [System.Windows.Forms.DialogResult]::OK) { exit 1 }",
			"$d.SelectedPath",
		}), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", b)
	}
}

// acceptGlobs turns accept patterns into "*.ext" globs. MIME types are
// expanded through the system MIME table; wildcard MIME types cannot be
// expanded and are dropped.
func acceptGlobs(patterns []string) []string {
	var globs []string
	add := func(ext string) {
		ext = strings.ToLower(strings.TrimLeft(ext, "*."))
		if ext == "" {
			return
		}
		if g := "*." + ext; !slices.Contains(globs, g) {
			globs = append(globs, g)
		}
	}

	for _, p := range patterns {
		if !strings.Contains(p, "/") {
			add(p)
			continue
		}
		exts, err := mime.ExtensionsByType(p)
		if err != nil {
			continue
		}
		for _, ext := range exts {
			add(ext)
		}
	}
	return globs
}

func zenityFileArgs(opts picker.FileOptions, globs []string) []string {
	args := []string{"--file-selection"}
	if opts.Title != "" {
		args = append(args, "--title="+opts.Title)
	}
	if opts.Multiple {
		args = append(args, "--multiple", "--separator=\n")
	}
	if len(globs) > 0 {
		args = append(args, "--file-filter=Files | "+strings.Join(globs, " "))
	}
	return args
}

func kdialogFileArgs(opts picker.FileOptions, globs []string) []string {
	var args []string
	if opts.Title != "" {
		args = append(args, "--title", opts.Title)
	}
	args = append(args, "--getopenfilename", ".")
	if len(globs) > 0 {
		args = append(args, strings.Join(globs, " ")+"|Files")
	}
	if opts.Multiple {
		args = append(args, "--multiple", "--separate-output")
	}
	return args
}

func osascriptArgs(lines []string) []string {
	args := make([]string, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, "-e", l)
	}
	return args
}

func osascriptFileScript(opts picker.FileOptions, globs []string) []string {
	chooser := "choose file" + osascriptPrompt(opts.Title)
	if len(globs) > 0 {
		types := make([]string, len(globs))
		for i, g := range globs {
			types[i] = asQuote(strings.TrimPrefix(g, "*."))
		}
		chooser += " of type {" + strings.Join(types, ", ") + "}"
	}

	if !opts.Multiple {
		return []string{"POSIX path of (" + chooser + ")"}
	}
	return []string{
		"set picked to " + chooser + " with multiple selections allowed",
		`set out to ""`,
		"repeat with f in picked",
		"set out to out & POSIX path of f & linefeed",
		"end repeat",
		"return out",
	}
}

func osascriptPrompt(title string) string {
	if title == "" {
		return ""
	}
	return " with prompt " + asQuote(title)
}

// asQuote quotes s as an AppleScript string literal.
func asQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func powershellArgs(lines []string) []string {
	script := append([]string{"[Console]::OutputEncoding = [System.Text.Encoding]::UTF8"}, lines...)
	return []string{"-NoProfile", "-NonInteractive", "-STA", "-Command", strings.Join(script, "; ")}
}

func powershellFileScript(opts picker.FileOptions, globs []string) []string {
	lines := []string{
		"Add-Type -AssemblyName System.Windows.Forms",
		"$d = New-Object System.Windows.Forms.OpenFileDialog",
	}
	if opts.Title != "" {
		lines = append(lines, "$d.Title = "+psQuote(opts.Title))
	}
	if opts.Multiple {
		lines = append(lines, "$d.Multiselect = $true")
	}
	if len(globs) > 0 {
		list := strings.Join(globs, ";")
		lines = append(lines, "$d.Filter = "+psQuote("Files ("+list+")|"+list))
	}
	return append(lines,
		"if ($d.ShowDialog() -ne [System.Windows.Forms.DialogResult]::OK) { exit 1 }",
		"$d.FileNames -join \"`n\"",
	)
}

// psQuote quotes s as a PowerShell single-quoted string.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
