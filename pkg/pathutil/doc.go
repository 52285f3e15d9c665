// Package pathutil provides pure, cross-platform path string utilities.
//
// The functions in this package never touch the filesystem. They operate on
// strings that may originate from a different machine than the one running
// the code, so Windows validity rules are applied on every host.
//
// # Canonical Form
//
// Internally every path is reduced to its canonical form:
//
//   - surrounding whitespace trimmed
//   - backslashes converted to forward slashes
//   - repeated separators collapsed
//   - trailing separator removed, except for a root ("/" or "C:/")
//   - Unicode composed to NFC
//
// [Normalize] and [NormalizeFor] re-emit the canonical form with the separator
// of a target [Platform]:
//
//	pathutil.NormalizeFor(`C:\Users\me\`, pathutil.Linux)    // "C:/Users/me"
//	pathutil.NormalizeFor("/srv//data/", pathutil.Windows)    // `\srv\data`
//
// # Validation
//
// [Validate] reports why a path would be rejected by Windows (reserved device
// names, forbidden characters, the 260 character ceiling). [IsValid] is the
// boolean shorthand.
package pathutil
