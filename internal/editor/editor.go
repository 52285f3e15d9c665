// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Open launches the user's preferred editor for path and waits for it to
// exit. The editor inherits the terminal; the location is reported on w.
func Open(ctx context.Context, w io.Writer, path string) error {
	argv := Command()
	if w != nil {
		_, _ = io.WriteString(w, "Location: "+path+"\n")
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Command returns the editor command line. $EDITOR and $VISUAL may carry
// arguments ("code --wait"). Fallback chain: $EDITOR, $VISUAL, nano, vi
// (notepad on Windows).
func Command() []string {
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields
		}
	}

	if runtime.GOOS == "windows" {
		return []string{"notepad"}
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}
	return []string{"vi"}
}
