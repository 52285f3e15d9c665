package picker

import (
	"context"
	"mime"
	"slices"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// ErrAbort is returned by a SandboxedPicker when the user dismissed it.
var ErrAbort = errors.Wrap(ErrCancelled, "picker aborted")

// defaultMIMEType is used for extensions without a known MIME type.
const defaultMIMEType = "application/octet-stream"

// Handle is an entry returned by a sandboxed picker. Only its name is
// observable.
type Handle interface {
	Name() string
}

// FileType is one accept group of an open-file picker: MIME types mapped to
// the extensions offered for each.
type FileType struct {
	Description string
	Accept      map[string][]string
}

// OpenFilePickerOptions configure SandboxedPicker.ShowOpenFilePicker.
type OpenFilePickerOptions struct {
	Title    string
	Multiple bool
	Types    []FileType
}

// DirectoryPickerOptions configure SandboxedPicker.ShowDirectoryPicker.
type DirectoryPickerOptions struct {
	Title string
}

// SandboxedPicker is a chooser that returns handles instead of paths.
// Dismissal is reported with an error matching ErrAbort.
type SandboxedPicker interface {
	ShowOpenFilePicker(ctx context.Context, opts OpenFilePickerOptions) ([]Handle, error)
	ShowDirectoryPicker(ctx context.Context, opts DirectoryPickerOptions) (Handle, error)
}

// SandboxAdapter adapts a SandboxedPicker. Every selection it reports is
// name-only.
type SandboxAdapter struct {
	picker SandboxedPicker
}

// NewSandboxAdapter wraps p.
func NewSandboxAdapter(p SandboxedPicker) *SandboxAdapter {
	return &SandboxAdapter{picker: p}
}

// Name implements Adapter.
func (a *SandboxAdapter) Name() string { return "sandbox" }

// SelectFile implements Adapter.
func (a *SandboxAdapter) SelectFile(ctx context.Context, opts FileOptions) Outcome {
	if a.picker == nil {
		return Unsupported("sandboxed picker not present")
	}
	handles, err := a.picker.ShowOpenFilePicker(ctx, OpenFilePickerOptions{
		Title:    opts.Title,
		Multiple: opts.Multiple,
		Types:    AcceptTypes(opts.Accept),
	})
	if err != nil {
		return fromError(err)
	}
	if !opts.Multiple && len(handles) > 1 {
		handles = handles[:1]
	}
	names := make([]string, 0, len(handles))
	for _, h := range handles {
		if h != nil {
			names = append(names, h.Name())
		}
	}
	return nameOnly(Selected(names...))
}

// SelectFolder implements Adapter.
func (a *SandboxAdapter) SelectFolder(ctx context.Context, title string) Outcome {
	if a.picker == nil {
		return Unsupported("sandboxed picker not present")
	}
	h, err := a.picker.ShowDirectoryPicker(ctx, DirectoryPickerOptions{Title: title})
	if err != nil {
		return fromError(err)
	}
	if h == nil {
		return Cancelled()
	}
	return nameOnly(Selected(h.Name()))
}

func nameOnly(o Outcome) Outcome {
	if o.Kind == OutcomeSelected {
		o.NameOnly = true
	}
	return o
}

// AcceptTypes translates an accept filter into the structured form an
// open-file picker expects. Extension patterns (".json", "*.json", "json")
// are grouped under their MIME type; MIME patterns ("image/*") are kept as
// keys with no extensions. It returns nil when every file is accepted.
func AcceptTypes(accept string) []FileType {
	patterns := FileOptions{Accept: accept}.AcceptPatterns()
	if len(patterns) == 0 {
		return nil
	}

	groups := make(map[string][]string)
	for _, p := range patterns {
		if strings.Contains(p, "/") {
			if _, ok := groups[p]; !ok {
				groups[p] = []string{}
			}
			continue
		}
		ext := "." + strings.TrimLeft(p, "*.")
		if ext == "." {
			continue
		}
		ext = strings.ToLower(ext)
		mt := mimeType(ext)
		if !slices.Contains(groups[mt], ext) {
			groups[mt] = append(groups[mt], ext)
		}
	}
	if len(groups) == 0 {
		return nil
	}

	return []FileType{{
		Description: "Files (" + strings.Join(patterns, ", ") + ")",
		Accept:      groups,
	}}
}

func mimeType(ext string) string {
	mt := mime.TypeByExtension(ext)
	if mt == "" {
		return defaultMIMEType
	}
	if media, _, err := mime.ParseMediaType(mt); err == nil {
		return media
	}
	return mt
}
