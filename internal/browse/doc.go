// Package browse is a sandboxed picker: an interactive terminal chooser
// over a directory tree that hands back entry names only.
//
// The tree is read through an fs.FS rooted at the directory the user is
// allowed to browse, usually os.DirFS of the configured root. Selection
// runs in go-fuzzyfinder. The returned handles expose Name and nothing
// else, so callers receive the same limited view a browser file system
// picker would give them.
package browse
