// Package picker asks the user for a file or folder path through whichever
// selection mechanism the running environment offers.
//
// Three mechanisms are tried in a fixed priority order:
//
//  1. a host bridge: native OS dialogs supplied by the surrounding shell
//     (see internal/dialog);
//  2. a sandboxed picker: a chooser that only hands out entry names, never
//     filesystem paths (see internal/browse);
//  3. manual entry: a free-text prompt, always available.
//
// Each mechanism is wrapped by an [Adapter] that translates its native
// behavior (returned paths, a cancellation error, a generic failure) into a
// single [Outcome]. [Picker.Pick] walks the chain until one adapter yields
// a definitive outcome: a selection, or an explicit user cancellation.
// Failures are logged and fall through to the next adapter; a mechanism
// that does not offer the requested mode is skipped silently.
//
// # Capabilities
//
// Which mechanisms exist is decided once per [Picker] by a [Probe] over an
// explicit [Environment] value. Nothing is read from global state, so tests
// construct an Environment with fakes and get deterministic behavior.
//
// # Known Limitation: Name-Only Selections
//
// The sandboxed picker cannot reveal where an entry lives. Its results are
// entry names, not paths, and cannot be resolved later. Such results are
// flagged with [Result.NameOnly] instead of being passed off as real paths.
//
// # Results
//
// Selected paths are normalized with pkg/pathutil for the configured target
// platform and validated against Windows naming rules. A path that fails
// validation produces a [KindInvalid] result carrying the reason, so a UI
// can prompt again instead of storing a malformed path.
package picker
