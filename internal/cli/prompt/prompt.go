// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Sentinel errors for prompts.
var (
	// ErrInputCancelled is returned when input ends before an answer is
	// given (e.g., Ctrl+D). It matches errors.ErrCancelled.
	ErrInputCancelled = errors.Wrap(errors.ErrCancelled, "input cancelled")

	ErrInvalidAnswer = errors.New("invalid answer")
)

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a Prompter reading stdin. Questions are written to
// stderr so stdout stays free for results.
func NewPrompter() *Prompter {
	return NewPrompterWithIO(os.Stdin, os.Stderr)
}

// NewPrompterWithIO creates a Prompter with custom reader and writer for testing.
func NewPrompterWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Prompt writes message and reads one line of input. The answer is
// returned without its line ending; surrounding spaces are kept.
//
// Returns ErrInputCancelled if input ends before anything was typed.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", message)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
		if line == "" {
			fmt.Fprintln(p.writer)
			return "", ErrInputCancelled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question. An empty answer picks def.
//
// Returns ErrInvalidAnswer for anything but y, yes, n or no, and
// ErrInputCancelled on end of input.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	answer, err := p.Prompt(fmt.Sprintf("%s [%s]", question, hint))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidAnswer, "%q", answer)
	}
}
