package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIdentifier is returned when an atom is requested without a name.
	ErrNoIdentifier = errors.New("formula: atom identifier is empty")
	// ErrUnknownConnective is returned for an unrecognized connective name.
	ErrUnknownConnective = errors.New("formula: unknown connective")
	// ErrUnknownAxiom is returned when an axiom name is not registered.
	ErrUnknownAxiom = errors.New("formula: unknown axiom")
	// ErrTooDeep is returned when parsing exceeds MaxDepth nested levels.
	ErrTooDeep = errors.New("formula: nesting exceeds maximum depth")
	// ErrEmptyAtomSet is returned when a random atom is drawn from no letters.
	ErrEmptyAtomSet = errors.New("formula: set of atoms must be non-empty")
)

// ParseErrorKind classifies a SymbolParseError.
type ParseErrorKind int

const (
	_ ParseErrorKind = iota
	InvalidChar
	UnbalancedParentheses
)

// SymbolParseError reports a tokenization failure.
type SymbolParseError struct {
	Kind   ParseErrorKind
	Char   rune
	Offset int // byte offset into the input
}

func (e *SymbolParseError) Error() string {
	switch e.Kind {
	case InvalidChar:
		return fmt.Sprintf("%q at offset %d does not correspond to a valid symbol", e.Char, e.Offset)
	case UnbalancedParentheses:
		return "the given string does not contain valid balanced parentheses"
	default:
		return "unknown parse error"
	}
}

// ValidationErrorKind classifies a ValidationError.
type ValidationErrorKind int

const (
	_ ValidationErrorKind = iota
	BinaryArity
	UnaryArity
	AtomWithChildren
	GroupingInTree
	EmptyFormula
	NoLiteral
	NoConnectives
	MismatchedSymbol
	ParseFailure
)

func (k ValidationErrorKind) String() string {
	switch k {
	case BinaryArity:
		return "binary-arity"
	case UnaryArity:
		return "unary-arity"
	case AtomWithChildren:
		return "atom-with-children"
	case GroupingInTree:
		return "grouping-in-tree"
	case EmptyFormula:
		return "empty-formula"
	case NoLiteral:
		return "no-literal"
	case NoConnectives:
		return "no-connectives"
	case MismatchedSymbol:
		return "mismatched-symbol"
	case ParseFailure:
		return "parse-failure"
	default:
		return "?"
	}
}

// ValidationError reports a structural defect, either found in a tree by
// Validate or detected while building one in Parse.
type ValidationError struct {
	Kind   ValidationErrorKind
	Symbol Symbol // offending symbol, when there is one
	Err    error  // underlying cause for ParseFailure
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case BinaryArity:
		return fmt.Sprintf("binary operator %s doesn't have two children", e.Symbol)
	case UnaryArity:
		return fmt.Sprintf("unary operator %s doesn't have a right child, has a left child, or both", e.Symbol)
	case AtomWithChildren:
		return fmt.Sprintf("atom %s has children", e.Symbol)
	case GroupingInTree:
		return "no parentheses in a tree formula"
	case EmptyFormula:
		return "the empty formula is not constructible"
	case NoLiteral:
		return "all subformulas need to terminate in a literal"
	case NoConnectives:
		return "this formula doesn't have any connectives, but has more than one literal"
	case MismatchedSymbol:
		return fmt.Sprintf("%s is not the expected symbol at this point in the formula", e.Symbol)
	case ParseFailure:
		return e.Err.Error()
	default:
		return "unknown validation error"
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

func parseFailure(err error) *ValidationError {
	return &ValidationError{Kind: ParseFailure, Err: err}
}
