package dialog

import (
	"context"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/picker"
)

// osascriptCancelled is the AppleScript error number for "User canceled".
const osascriptCancelled = "-128"

// Native runs one dialog backend. It implements picker.Bridge.
type Native struct {
	backend Backend
	program string
	runner  Runner
}

type options struct {
	runner Runner
}

// Option configures a Native or an Opener.
type Option func(*options)

// WithRunner replaces the program runner.
func WithRunner(r Runner) Option {
	return func(o *options) {
		if r != nil {
			o.runner = r
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{runner: ExecRunner{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns a Native running program as backend b.
func New(b Backend, program string, opts ...Option) *Native {
	if program == "" {
		program = string(b)
	}
	o := applyOptions(opts)
	return &Native{backend: b, program: program, runner: o.runner}
}

// Backend returns the backend in use.
func (n *Native) Backend() Backend { return n.backend }

// Program returns the resolved program path.
func (n *Native) Program() string { return n.program }

// SelectFile implements picker.Bridge.
func (n *Native) SelectFile(ctx context.Context, opts picker.FileOptions) ([]string, error) {
	args, err := fileArgs(n.backend, opts)
	if err != nil {
		return nil, err
	}
	paths, err := n.run(ctx, args)
	if err != nil {
		return nil, err
	}
	if !opts.Multiple && len(paths) > 1 {
		paths = paths[:1]
	}
	return paths, nil
}

// SelectFolder implements picker.Bridge.
func (n *Native) SelectFolder(ctx context.Context, title string) (string, error) {
	args, err := folderArgs(n.backend, title)
	if err != nil {
		return "", err
	}
	paths, err := n.run(ctx, args)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", nil
	}
	return paths[0], nil
}

func (n *Native) run(ctx context.Context, args []string) ([]string, error) {
	out, err := n.runner.Run(ctx, n.program, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "running %s", n.backend)
	}

	switch {
	case out.ExitCode == 0:
		return splitLines(out.Stdout), nil
	case n.dismissed(out):
		return nil, errors.Wrapf(picker.ErrCancelled, "%s dialog dismissed", n.backend)
	default:
		return nil, errors.Newf("%s exited with status %d: %s",
			n.backend, out.ExitCode, strings.TrimSpace(string(out.Stderr)))
	}
}

// dismissed reports whether a non-zero exit means the user closed the
// dialog.
func (n *Native) dismissed(out Output) bool {
	if out.ExitCode != 1 {
		return false
	}
	if n.backend == BackendOSAScript {
		return strings.Contains(string(out.Stderr), osascriptCancelled)
	}
	return true
}

func splitLines(b []byte) []string {
	var lines []string
	for line := range strings.SplitSeq(string(b), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
