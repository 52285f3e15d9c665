package dialog

import (
	"context"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// ErrNoOpener indicates the platform has no known way to open paths.
var ErrNoOpener = errors.New("no program to open paths with")

// Opener hands a path to the desktop's default application.
type Opener struct {
	program string
	args    []string
	runner  Runner
}

// openerCommand returns the program and leading arguments for goos.
func openerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// DetectOpener finds the opener program for env.
func DetectOpener(env Env, opts ...Option) (*Opener, error) {
	name, args := openerCommand(env.GOOS)
	program, err := env.LookPath(name)
	if err != nil {
		return nil, errors.Wrapf(ErrNoOpener, "%s not found", name)
	}
	o := applyOptions(opts)
	return &Opener{program: program, args: args, runner: o.runner}, nil
}

// Program returns the resolved opener program.
func (o *Opener) Program() string { return o.program }

// Open launches the default application for path.
func (o *Opener) Open(ctx context.Context, path string) error {
	args := append(append([]string{}, o.args...), path)
	out, err := o.runner.Run(ctx, o.program, args...)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	if out.ExitCode != 0 {
		return errors.Newf("%s exited with status %d opening %s", o.program, out.ExitCode, path)
	}
	return nil
}
