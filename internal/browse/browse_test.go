package browse

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pathpick/internal/picker"
)

// fakeFinder chooses entries by label.
type fakeFinder struct {
	pick   []string
	err    error
	seen   []string
	header string
}

func (f *fakeFinder) record(entries []Entry, header string) {
	f.header = header
	f.seen = f.seen[:0]
	for _, e := range entries {
		f.seen = append(f.seen, e.label())
	}
}

func (f *fakeFinder) indexOf(label string) int {
	for i, l := range f.seen {
		if l == label {
			return i
		}
	}
	return -1
}

func (f *fakeFinder) Find(_ context.Context, entries []Entry, header string) (int, error) {
	f.record(entries, header)
	if f.err != nil {
		return -1, f.err
	}
	return f.indexOf(f.pick[0]), nil
}

func (f *fakeFinder) FindMulti(_ context.Context, entries []Entry, header string) ([]int, error) {
	f.record(entries, header)
	if f.err != nil {
		return nil, f.err
	}
	var idxs []int
	for _, p := range f.pick {
		idxs = append(idxs, f.indexOf(p))
	}
	return idxs, nil
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md":              {Data: []byte("# hi")},
		"config.json":            {Data: []byte("{}")},
		"docs/guide.txt":         {Data: []byte("guide")},
		"docs/img/logo.png":      {Data: []byte{0x89}},
		"docs/img/deep/more.txt": {Data: []byte("deep")},
		".git/HEAD":              {Data: []byte("ref")},
		".env":                   {Data: []byte("X=1")},
	}
}

func names(hs []picker.Handle) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name()
	}
	return out
}

func TestShowOpenFilePicker(t *testing.T) {
	tests := []struct {
		name     string
		opts     picker.OpenFilePickerOptions
		pick     []string
		offered  []string
		want     []string
		browseBy []Option
	}{
		{
			name:    "all files skip hidden",
			opts:    picker.OpenFilePickerOptions{Title: "Pick"},
			pick:    []string{"docs/guide.txt"},
			offered: []string{"README.md", "config.json", "docs/guide.txt", "docs/img/deep/more.txt", "docs/img/logo.png"},
			want:    []string{"guide.txt"},
		},
		{
			name:    "filtered by extension",
			opts:    picker.OpenFilePickerOptions{Types: picker.AcceptTypes(".json")},
			pick:    []string{"config.json"},
			offered: []string{"config.json"},
			want:    []string{"config.json"},
		},
		{
			name:    "filtered by mime wildcard",
			opts:    picker.OpenFilePickerOptions{Types: picker.AcceptTypes("image/*")},
			pick:    []string{"docs/img/logo.png"},
			offered: []string{"docs/img/logo.png"},
			want:    []string{"logo.png"},
		},
		{
			name:     "depth limited",
			opts:     picker.OpenFilePickerOptions{},
			pick:     []string{"README.md"},
			offered:  []string{"README.md", "config.json", "docs/guide.txt"},
			want:     []string{"README.md"},
			browseBy: []Option{WithMaxDepth(2)},
		},
		{
			name:     "hidden included",
			opts:     picker.OpenFilePickerOptions{Types: picker.AcceptTypes(".env")},
			pick:     []string{".env"},
			offered:  []string{".env"},
			want:     []string{".env"},
			browseBy: []Option{WithHidden(true)},
		},
		{
			name:    "multiple",
			opts:    picker.OpenFilePickerOptions{Multiple: true, Types: picker.AcceptTypes(".txt")},
			pick:    []string{"docs/guide.txt", "docs/img/deep/more.txt"},
			offered: []string{"docs/guide.txt", "docs/img/deep/more.txt"},
			want:    []string{"guide.txt", "more.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFinder{pick: tt.pick}
			b := New(testFS(), append([]Option{WithFinder(f)}, tt.browseBy...)...)

			hs, err := b.ShowOpenFilePicker(t.Context(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.offered, f.seen)
			assert.Equal(t, tt.want, names(hs))
			assert.Equal(t, tt.opts.Title, f.header)
		})
	}
}

func TestShowDirectoryPicker(t *testing.T) {
	f := &fakeFinder{pick: []string{"docs/img/"}}
	b := New(testFS(), WithFinder(f))

	h, err := b.ShowDirectoryPicker(t.Context(), picker.DirectoryPickerOptions{Title: "Folder"})
	require.NoError(t, err)
	assert.Equal(t, "img", h.Name())
	assert.Equal(t, []string{"docs/", "docs/img/", "docs/img/deep/"}, f.seen)
	assert.Equal(t, "Folder", f.header)
}

func TestBrowser_Errors(t *testing.T) {
	t.Run("abort", func(t *testing.T) {
		f := &fakeFinder{err: picker.ErrAbort}
		b := New(testFS(), WithFinder(f))
		_, err := b.ShowOpenFilePicker(t.Context(), picker.OpenFilePickerOptions{})
		require.ErrorIs(t, err, picker.ErrAbort)
		require.ErrorIs(t, err, picker.ErrCancelled)
	})

	t.Run("no matching entries", func(t *testing.T) {
		b := New(testFS(), WithFinder(&fakeFinder{}))
		_, err := b.ShowOpenFilePicker(t.Context(), picker.OpenFilePickerOptions{Types: picker.AcceptTypes(".xlsx")})
		require.ErrorIs(t, err, ErrNoEntries)
	})

	t.Run("no folders", func(t *testing.T) {
		b := New(fstest.MapFS{"a.txt": {}}, WithFinder(&fakeFinder{}))
		_, err := b.ShowDirectoryPicker(t.Context(), picker.DirectoryPickerOptions{})
		require.ErrorIs(t, err, ErrNoEntries)
	})

	t.Run("nil root", func(t *testing.T) {
		b := New(nil, WithFinder(&fakeFinder{}))
		_, err := b.ShowDirectoryPicker(t.Context(), picker.DirectoryPickerOptions{})
		require.ErrorIs(t, err, ErrNoEntries)
	})

	t.Run("bad index", func(t *testing.T) {
		b := New(testFS(), WithFinder(&fakeFinder{pick: []string{"missing/"}}))
		_, err := b.ShowDirectoryPicker(t.Context(), picker.DirectoryPickerOptions{})
		require.Error(t, err)
	})
}

func TestMaxEntries(t *testing.T) {
	f := &fakeFinder{pick: []string{"README.md"}}
	b := New(testFS(), WithFinder(f), WithMaxEntries(2))

	_, err := b.ShowOpenFilePicker(t.Context(), picker.OpenFilePickerOptions{})
	require.NoError(t, err)
	assert.Len(t, f.seen, 2)
}

func TestBrowser_WithSandboxAdapter(t *testing.T) {
	f := &fakeFinder{pick: []string{"config.json"}}
	a := picker.NewSandboxAdapter(New(testFS(), WithFinder(f)))

	out := a.SelectFile(t.Context(), picker.FileOptions{Accept: ".json"})
	assert.Equal(t, picker.OutcomeSelected, out.Kind)
	assert.True(t, out.NameOnly)
	assert.Equal(t, []string{"config.json"}, out.Paths)
}

func TestPreview(t *testing.T) {
	assert.Contains(t, preview(Entry{rel: "docs/img", dir: true}), "Type: folder")
	assert.Contains(t, preview(Entry{rel: "docs/img", dir: true}), "Location: docs")
	assert.Contains(t, preview(Entry{rel: "a.txt"}), "Location: (top level)")
}
