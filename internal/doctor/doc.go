// Package doctor diagnoses the environment pathpick runs in.
//
// Each [Check] inspects one concern (the host platform, the native dialog
// program, the terminal chooser, the desktop opener, the config file) and
// reports a [CheckResult] with a [Severity]. A [Runner] executes checks in
// registration order and aggregates a [Report].
//
// Checks receive everything they inspect through their fields, so tests
// construct them with fake environments. Checks that can repair what they
// find implement [Fixer].
package doctor
