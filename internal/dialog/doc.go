// Package dialog drives native file dialogs through the helper programs a
// desktop session ships with: zenity or kdialog on Linux and the BSDs,
// osascript on macOS, and PowerShell with Windows Forms on Windows.
//
// A [Native] value satisfies picker.Bridge. Dialog programs report
// dismissal through their exit status, which is mapped to
// picker.ErrCancelled; any other non-zero status is an error carrying the
// program's stderr.
//
// Programs are executed through a [Runner], so tests can assert on the
// exact command line without a display.
package dialog
