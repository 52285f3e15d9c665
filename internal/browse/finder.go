package browse

import (
	"context"
	"fmt"
	"path"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/picker"
)

// FuzzyFinder is the terminal Finder backed by go-fuzzyfinder.
type FuzzyFinder struct{}

// Find implements Finder.
func (FuzzyFinder) Find(ctx context.Context, entries []Entry, header string) (int, error) {
	idx, err := fuzzyfinder.Find(entries, labelFunc(entries), finderOptions(ctx, entries, header)...)
	if err != nil {
		return -1, mapFinderError(err)
	}
	return idx, nil
}

// FindMulti implements Finder.
func (FuzzyFinder) FindMulti(ctx context.Context, entries []Entry, header string) ([]int, error) {
	idxs, err := fuzzyfinder.FindMulti(entries, labelFunc(entries), finderOptions(ctx, entries, header)...)
	if err != nil {
		return nil, mapFinderError(err)
	}
	return idxs, nil
}

func labelFunc(entries []Entry) func(int) string {
	return func(i int) string {
		return entries[i].label()
	}
}

func finderOptions(ctx context.Context, entries []Entry, header string) []fuzzyfinder.Option {
	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithContext(ctx),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(entries[i])
		}),
	}
	if header != "" {
		opts = append(opts, fuzzyfinder.WithHeader(header))
	}
	return opts
}

func preview(e Entry) string {
	kind := "file"
	if e.dir {
		kind = "folder"
	}
	loc := path.Dir(e.rel)
	if loc == "." {
		loc = "(top level)"
	}
	return fmt.Sprintf("Name: %s\nType: %s\nLocation: %s\n\nOnly the name is returned.", e.Name(), kind, loc)
}

func mapFinderError(err error) error {
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return errors.Wrap(picker.ErrAbort, "chooser closed")
	}
	return errors.Wrap(err, "interactive chooser failed")
}
