// Package internal provides the batch checking engine behind the hilbert
// command.
//
// Key components:
//
// Engine: reads formula files (one formula per line, '#' starts a comment)
// and runs every enabled Check on each line. Files ending in .proof are read
// as proofs, one step per line, and checked as a whole.
//
// Check: the contract for a single kind of finding. The built-in checks are
// validate, cnf, axiom-instance, roundtrip and proof; their severities come
// from the configuration file.
//
// Directives: a "#nocheck" comment silences every check on its line, and
// "#nocheck:cnf,roundtrip" only the named ones. On a line of its own the
// directive also covers the next formula, or the whole file when it comes
// before the first formula.
//
// Cache: a gob file of previous results keyed by file hash, modification
// time and engine setup.
//
// Watcher: re-checks formula files when they are written.
//
// Usage:
//
//	engine, err := internal.NewEngine(nil, nil)
//	if err != nil {
//	    // handle error
//	}
//	reports, err := engine.Run("axioms.wff")
package internal
