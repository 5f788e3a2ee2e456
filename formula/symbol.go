package formula

import (
	"fmt"
	"strings"
)

// SymbolKind classifies a Symbol.
type SymbolKind uint8

const (
	_ SymbolKind = iota
	KindAtom
	KindUnary
	KindBinary
	KindGroupOpen
	KindGroupClose
)

func (k SymbolKind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindGroupOpen:
		return "group-open"
	case KindGroupClose:
		return "group-close"
	default:
		return "?"
	}
}

// UnaryOp represents unary connectives.
type UnaryOp uint8

const (
	_ UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "¬"
	}
	return "?"
}

// BinaryOp represents binary connectives.
type BinaryOp uint8

const (
	_ BinaryOp = iota
	OpIff
	OpImplies
	OpOr
	OpAnd
)

func (op BinaryOp) String() string {
	switch op {
	case OpIff:
		return "↔"
	case OpImplies:
		return "→"
	case OpOr:
		return "∨"
	case OpAnd:
		return "∧"
	default:
		return "?"
	}
}

// ascii returns the ASCII spelling accepted by the tokenizer.
func (op BinaryOp) ascii() string {
	switch op {
	case OpIff:
		return "<->"
	case OpImplies:
		return "->"
	case OpOr:
		return "|"
	case OpAnd:
		return "&"
	default:
		return "?"
	}
}

// ParseConnective resolves a connective by name ("and", "or", "implies",
// "iff"), by glyph, or by its ASCII spelling.
func ParseConnective(name string) (BinaryOp, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "and", "∧", "&":
		return OpAnd, nil
	case "or", "∨", "|":
		return OpOr, nil
	case "implies", "→", "->":
		return OpImplies, nil
	case "iff", "↔", "<->":
		return OpIff, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConnective, name)
}

// Symbol is a single token of a formula. Only the field matching Kind is
// meaningful; Symbol values are comparable and usable as map keys.
type Symbol struct {
	Kind   SymbolKind
	Atom   rune
	Unary  UnaryOp
	Binary BinaryOp
}

// AtomSymbol returns the symbol for the proposition named r.
func AtomSymbol(r rune) Symbol { return Symbol{Kind: KindAtom, Atom: r} }

// NotSymbol returns the negation symbol.
func NotSymbol() Symbol { return Symbol{Kind: KindUnary, Unary: OpNot} }

// BinarySymbol returns the symbol for a binary connective.
func BinarySymbol(op BinaryOp) Symbol { return Symbol{Kind: KindBinary, Binary: op} }

var (
	groupOpen  = Symbol{Kind: KindGroupOpen}
	groupClose = Symbol{Kind: KindGroupClose}
)

// Rank orders symbols by binding strength: a lower rank binds more loosely.
//
//	↔ < → < ∨ < ∧ < ¬ < atom
//
// Grouping symbols rank above atoms; they never occur inside a tree.
func (s Symbol) Rank() int {
	switch s.Kind {
	case KindBinary:
		switch s.Binary {
		case OpIff:
			return 1
		case OpImplies:
			return 2
		case OpOr:
			return 3
		case OpAnd:
			return 4
		}
	case KindUnary:
		return 5
	case KindAtom:
		return 6
	case KindGroupOpen:
		return 7
	case KindGroupClose:
		return 8
	}
	return 0
}

// IsConnective reports whether s is a unary or binary operator.
func (s Symbol) IsConnective() bool {
	return s.Kind == KindUnary || s.Kind == KindBinary
}

func (s Symbol) String() string {
	return s.glyph(false)
}

func (s Symbol) glyph(ascii bool) string {
	switch s.Kind {
	case KindAtom:
		return string(s.Atom)
	case KindUnary:
		if ascii {
			return "~"
		}
		return s.Unary.String()
	case KindBinary:
		if ascii {
			return s.Binary.ascii()
		}
		return s.Binary.String()
	case KindGroupOpen:
		return "("
	case KindGroupClose:
		return ")"
	default:
		return "?"
	}
}
