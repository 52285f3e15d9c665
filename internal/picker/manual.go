package picker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Manual entry hints.
const (
	folderHint = "Enter folder path"
	fileHint   = "Enter file path (filter: %s)"
)

// Prompter reads one line of free text from the user. Returning io.EOF or
// an error matching ErrCancelled means the user declined to answer.
type Prompter interface {
	Prompt(message string) (string, error)
}

// ManualAdapter asks the user to type a path. It always returns at most one
// path, even when several were requested.
type ManualAdapter struct {
	prompter Prompter
}

// NewManualAdapter wraps p.
func NewManualAdapter(p Prompter) *ManualAdapter {
	return &ManualAdapter{prompter: p}
}

// Name implements Adapter.
func (a *ManualAdapter) Name() string { return "manual" }

// SelectFile implements Adapter.
func (a *ManualAdapter) SelectFile(ctx context.Context, opts FileOptions) Outcome {
	return a.ask(ctx, fileMessage(opts))
}

// SelectFolder implements Adapter.
func (a *ManualAdapter) SelectFolder(ctx context.Context, title string) Outcome {
	msg := folderHint
	if title != "" {
		msg = title
	}
	return a.ask(ctx, msg)
}

// SelectAny implements AnySelector. A typed path can name either kind of
// entry, so the file hint is reused.
func (a *ManualAdapter) SelectAny(ctx context.Context, opts FileOptions) Outcome {
	return a.ask(ctx, fileMessage(opts))
}

func (a *ManualAdapter) ask(ctx context.Context, message string) Outcome {
	if a.prompter == nil {
		return Failed(ErrNoFallback)
	}
	if err := ctx.Err(); err != nil {
		return Failed(err)
	}

	input, err := a.prompter.Prompt(message)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, ErrCancelled) {
			return Cancelled()
		}
		return Failed(errors.Wrap(err, "reading path"))
	}
	return Selected(strings.TrimSpace(input))
}

func fileMessage(opts FileOptions) string {
	if opts.Title != "" {
		return opts.Title
	}
	accept := opts.Accept
	if strings.TrimSpace(accept) == "" {
		accept = AcceptAny
	}
	return fmt.Sprintf(fileHint, accept)
}
