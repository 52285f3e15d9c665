// Package main is the entry point for the pathpick CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/pathpick/cmd/pathpick/commands"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
)

func main() {
	if err := commands.Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

// report prints err and its suggestion to w. Cancellation and bare exit
// statuses print nothing.
func report(w io.Writer, err error) {
	if errors.Is(err, errors.ErrCancelled) {
		return
	}

	var exitErr *errors.ExitError
	isExit := errors.As(err, &exitErr)
	if isExit && exitErr.Err == nil {
		return
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	if !logging.SupportsColor(w) {
		red.DisableColor()
		yellow.DisableColor()
	}

	_, _ = red.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, err.Error())
	if isExit && exitErr.Suggestion != "" {
		_, _ = yellow.Fprintln(w, exitErr.Suggestion)
	}
}
