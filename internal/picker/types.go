package picker

import (
	"context"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Mode selects what kind of filesystem entry is requested.
type Mode int

const (
	// ModeFile requests one or more files.
	ModeFile Mode = iota
	// ModeFolder requests a single folder.
	ModeFolder
	// ModeFileOrFolder accepts either.
	ModeFileOrFolder
)

// AcceptAny is the Accept filter matching every file.
const AcceptAny = "*"

// Sentinel errors shared by adapters and their backing mechanisms.
var (
	// ErrCancelled is returned by a mechanism when the user dismissed it.
	ErrCancelled = errors.ErrCancelled

	// ErrUnsupported indicates a mechanism does not offer the requested mode
	// or is not present at all. The picker skips such adapters silently.
	ErrUnsupported = errors.New("selection mode not supported")

	// ErrInvalidMode indicates a Request carried an unknown Mode.
	ErrInvalidMode = errors.New("invalid selection mode")

	// ErrNoFallback indicates the Picker was built without a manual prompt,
	// which is the last resort of every chain.
	ErrNoFallback = errors.New("no manual fallback configured")
)

// String returns the mode name used in flags, logs and JSON output.
func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeFolder:
		return "folder"
	case ModeFileOrFolder:
		return "file-folder"
	default:
		return "unknown"
	}
}

// ParseMode parses "file", "folder" or "file-folder" ("any" is accepted as
// an alias of the latter).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file", "":
		return ModeFile, nil
	case "folder", "dir", "directory":
		return ModeFolder, nil
	case "file-folder", "any":
		return ModeFileOrFolder, nil
	default:
		return ModeFile, errors.Wrapf(ErrInvalidMode, "%q", s)
	}
}

// FileOptions are passed to adapters for file selection.
type FileOptions struct {
	Title    string
	Multiple bool
	// Accept is a comma-separated list of extension or MIME patterns such as
	// ".json,.txt" or "image/*". AcceptAny or "" matches everything.
	Accept string
}

// AcceptPatterns splits Accept into trimmed, non-empty patterns. It returns
// nil when every file is accepted.
func (o FileOptions) AcceptPatterns() []string {
	var patterns []string
	for p := range strings.SplitSeq(o.Accept, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == AcceptAny || p == "*.*" || p == "*/*" {
			return nil
		}
		patterns = append(patterns, p)
	}
	return patterns
}

// Request describes one selection. It is a value type built per call.
type Request struct {
	Mode     Mode
	Multiple bool
	Accept   string
	Title    string
}

func (r Request) fileOptions() FileOptions {
	accept := r.Accept
	if strings.TrimSpace(accept) == "" {
		accept = AcceptAny
	}
	return FileOptions{
		Title:    r.Title,
		Multiple: r.Multiple,
		Accept:   accept,
	}
}

// Kind classifies a Result.
type Kind int

const (
	// KindCancelled means no selection was made.
	KindCancelled Kind = iota
	// KindSelected means Paths holds at least one path.
	KindSelected
	// KindInvalid means a selection was made but failed validation.
	KindInvalid
)

// String returns the kind name used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindCancelled:
		return "cancelled"
	case KindSelected:
		return "selected"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is what Pick returns.
type Result struct {
	Kind Kind

	// Paths holds the normalized selection. It is non-empty for
	// KindSelected and holds the rejected paths for KindInvalid.
	Paths []string

	// NameOnly is set when Paths are entry names from the sandboxed picker
	// rather than resolvable paths.
	NameOnly bool

	// Adapter names the adapter that produced the result, if any.
	Adapter string

	// Reason explains a KindInvalid result. It matches
	// pathutil.ErrInvalidPath via errors.Is.
	Reason error
}

// Selected reports whether the result holds a usable selection.
func (r Result) Selected() bool {
	return r.Kind == KindSelected && len(r.Paths) > 0
}

// Path returns the first selected path, or an empty string.
func (r Result) Path() string {
	if !r.Selected() {
		return ""
	}
	return r.Paths[0]
}

// OutcomeKind classifies an Outcome.
type OutcomeKind int

const (
	// OutcomeFailed means the mechanism could not produce an answer.
	OutcomeFailed OutcomeKind = iota
	// OutcomeSelected means the user chose at least one entry.
	OutcomeSelected
	// OutcomeCancelled means the user explicitly dismissed the mechanism.
	OutcomeCancelled
)

// Outcome is the single shape every adapter reports, whatever its backing
// mechanism returns natively.
type Outcome struct {
	Kind     OutcomeKind
	Paths    []string
	NameOnly bool
	Err      error
}

// Selected builds a selection outcome from paths, dropping blank entries.
// With nothing left it returns Cancelled: a selection is never empty.
func Selected(paths ...string) Outcome {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return Cancelled()
	}
	return Outcome{Kind: OutcomeSelected, Paths: kept}
}

// Cancelled builds a user-cancellation outcome.
func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}

// Failed builds a failure outcome. A nil err is replaced by a generic error
// so that a failed outcome always explains itself.
func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("adapter failed without an error")
	}
	return Outcome{Kind: OutcomeFailed, Err: err}
}

// Unsupported builds a failure outcome wrapping ErrUnsupported.
func Unsupported(format string, args ...any) Outcome {
	return Failed(errors.Wrapf(ErrUnsupported, format, args...))
}

// fromError maps a mechanism error: cancellation becomes Cancelled, anything
// else Failed.
func fromError(err error) Outcome {
	if errors.Is(err, ErrCancelled) {
		return Cancelled()
	}
	return Failed(err)
}

// Adapter is one selection mechanism.
type Adapter interface {
	// Name identifies the adapter in logs and results.
	Name() string

	// SelectFile asks for one file, or several when opts.Multiple is set.
	SelectFile(ctx context.Context, opts FileOptions) Outcome

	// SelectFolder asks for one folder.
	SelectFolder(ctx context.Context, title string) Outcome
}

// AnySelector is implemented by adapters that can offer files and folders
// in the same selection. Adapters without it are skipped for
// ModeFileOrFolder.
type AnySelector interface {
	SelectAny(ctx context.Context, opts FileOptions) Outcome
}
