package picker

import (
	"context"
)

// Bridge is a host-provided native dialog facility.
//
// SelectFile returns the chosen paths. SelectFolder returns the chosen path
// or an empty string. Both return an error matching ErrCancelled when the
// user dismissed the dialog.
type Bridge interface {
	SelectFile(ctx context.Context, opts FileOptions) ([]string, error)
	SelectFolder(ctx context.Context, title string) (string, error)
}

// BridgeAdapter adapts a Bridge.
type BridgeAdapter struct {
	bridge Bridge
}

// NewBridgeAdapter wraps b.
func NewBridgeAdapter(b Bridge) *BridgeAdapter {
	return &BridgeAdapter{bridge: b}
}

// Name implements Adapter.
func (a *BridgeAdapter) Name() string { return "bridge" }

// SelectFile implements Adapter.
func (a *BridgeAdapter) SelectFile(ctx context.Context, opts FileOptions) Outcome {
	if a.bridge == nil {
		return Unsupported("host bridge not present")
	}
	paths, err := a.bridge.SelectFile(ctx, opts)
	if err != nil {
		return fromError(err)
	}
	if !opts.Multiple && len(paths) > 1 {
		paths = paths[:1]
	}
	return Selected(paths...)
}

// SelectFolder implements Adapter.
func (a *BridgeAdapter) SelectFolder(ctx context.Context, title string) Outcome {
	if a.bridge == nil {
		return Unsupported("host bridge not present")
	}
	path, err := a.bridge.SelectFolder(ctx, title)
	if err != nil {
		return fromError(err)
	}
	return Selected(path)
}
