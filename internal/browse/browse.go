package browse

import (
	"context"
	"io/fs"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/picker"
)

// Defaults for tree collection.
const (
	DefaultMaxDepth   = 4
	DefaultMaxEntries = 5000
)

// ErrNoEntries indicates the tree holds nothing to choose from.
var ErrNoEntries = errors.New("no entries to choose from")

// Entry is a file or folder offered by the browser. Only its name is
// exported.
type Entry struct {
	rel string
	dir bool
}

// Name implements picker.Handle.
func (e Entry) Name() string { return path.Base(e.rel) }

func (e Entry) label() string {
	if e.dir {
		return e.rel + "/"
	}
	return e.rel
}

// Finder runs the interactive chooser over entries and returns the chosen
// indexes. Dismissal is reported as picker.ErrAbort.
type Finder interface {
	Find(ctx context.Context, entries []Entry, header string) (int, error)
	FindMulti(ctx context.Context, entries []Entry, header string) ([]int, error)
}

// Browser implements picker.SandboxedPicker over an fs.FS.
type Browser struct {
	fsys       fs.FS
	finder     Finder
	maxDepth   int
	maxEntries int
	hidden     bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithFinder replaces the interactive chooser.
func WithFinder(f Finder) Option {
	return func(b *Browser) {
		if f != nil {
			b.finder = f
		}
	}
}

// WithMaxDepth limits how many directory levels are offered.
func WithMaxDepth(n int) Option {
	return func(b *Browser) {
		if n > 0 {
			b.maxDepth = n
		}
	}
}

// WithMaxEntries caps the number of entries collected.
func WithMaxEntries(n int) Option {
	return func(b *Browser) {
		if n > 0 {
			b.maxEntries = n
		}
	}
}

// WithHidden includes dot files and dot directories.
func WithHidden(show bool) Option {
	return func(b *Browser) {
		b.hidden = show
	}
}

// New returns a Browser over fsys.
func New(fsys fs.FS, opts ...Option) *Browser {
	b := &Browser{
		fsys:       fsys,
		finder:     FuzzyFinder{},
		maxDepth:   DefaultMaxDepth,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ShowOpenFilePicker implements picker.SandboxedPicker.
func (b *Browser) ShowOpenFilePicker(ctx context.Context, opts picker.OpenFilePickerOptions) ([]picker.Handle, error) {
	entries, err := b.collect(func(e Entry) bool {
		return !e.dir && matchTypes(e.rel, opts.Types)
	})
	if err != nil {
		return nil, err
	}

	var idxs []int
	if opts.Multiple {
		idxs, err = b.finder.FindMulti(ctx, entries, opts.Title)
	} else {
		var idx int
		idx, err = b.finder.Find(ctx, entries, opts.Title)
		idxs = []int{idx}
	}
	if err != nil {
		return nil, err
	}

	handles := make([]picker.Handle, 0, len(idxs))
	for _, i := range idxs {
		if i >= 0 && i < len(entries) {
			handles = append(handles, entries[i])
		}
	}
	return handles, nil
}

// ShowDirectoryPicker implements picker.SandboxedPicker.
func (b *Browser) ShowDirectoryPicker(ctx context.Context, opts picker.DirectoryPickerOptions) (picker.Handle, error) {
	entries, err := b.collect(func(e Entry) bool { return e.dir })
	if err != nil {
		return nil, err
	}

	idx, err := b.finder.Find(ctx, entries, opts.Title)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(entries) {
		return nil, errors.Newf("chooser returned index %d of %d", idx, len(entries))
	}
	return entries[idx], nil
}

func (b *Browser) collect(keep func(Entry) bool) ([]Entry, error) {
	if b.fsys == nil {
		return nil, errors.Wrap(ErrNoEntries, "no root to browse")
	}

	var entries []Entry
	err := fs.WalkDir(b.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			// Unreadable subtrees are left out.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if p == "." {
			return nil
		}
		if !b.hidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		e := Entry{rel: p, dir: d.IsDir()}
		if keep(e) {
			entries = append(entries, e)
			if len(entries) >= b.maxEntries {
				return fs.SkipAll
			}
		}
		if d.IsDir() && strings.Count(p, "/")+1 >= b.maxDepth {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading directory tree")
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

// matchTypes reports whether name passes any of the accept groups. No
// groups means everything passes.
func matchTypes(name string, types []picker.FileType) bool {
	if len(types) == 0 {
		return true
	}
	ext := strings.ToLower(path.Ext(name))
	media := ""
	if ext != "" {
		media, _, _ = mime.ParseMediaType(mime.TypeByExtension(ext))
	}

	for _, ft := range types {
		for mt, exts := range ft.Accept {
			if ext != "" && slices.Contains(exts, ext) {
				return true
			}
			if media == "" {
				continue
			}
			if prefix, ok := strings.CutSuffix(mt, "*"); ok && strings.HasPrefix(media, prefix) {
				return true
			}
			if len(exts) == 0 && media == mt {
				return true
			}
		}
	}
	return false
}
