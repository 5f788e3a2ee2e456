// Package formula implements propositional formulas for Hilbert-style
// proof work.
//
// A Formula is a binary tree of symbols: atoms (single letters) at the
// leaves, the unary connective ¬ and the binary connectives ∧ ∨ → ↔ at the
// internal nodes. Formulas are parsed from text with Parse, checked with
// Validate and written back with String (inorder, minimal parentheses) or
// PreorderString.
//
// Binding strength, from loosest to tightest:
//
//	↔  →  ∨  ∧  ¬  atom
//
// Binary connectives of equal strength associate to the right, so p→q→r is
// p→(q→r).
//
// On top of the tree the package provides a rewrite to conjunctive normal
// form, substitution of formulas for atoms, a single-pass axiom instance
// check, the largest common subformula of two formulas, modus ponens and a
// line-by-line proof checker.
//
// Ownership: every node has exactly one parent. Operations documented as
// consuming take over their arguments; Clone a formula first to keep using
// it.
package formula
