package formula

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDepth bounds how deeply Parse recurses into nested subformulas.
const MaxDepth = 10000

// Tokenize converts text into a flat symbol sequence. Whitespace is ignored.
// Besides the glyphs ¬ ∧ ∨ → ↔ it accepts the ASCII spellings ~ ! & | -> <->.
func Tokenize(text string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(text))
	depth := 0

	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			// skip
		case isAtomLetter(r):
			symbols = append(symbols, AtomSymbol(r))
		case r == '¬' || r == '~' || r == '!':
			symbols = append(symbols, NotSymbol())
		case r == '∧' || r == '&':
			symbols = append(symbols, BinarySymbol(OpAnd))
		case r == '∨' || r == '|':
			symbols = append(symbols, BinarySymbol(OpOr))
		case r == '→':
			symbols = append(symbols, BinarySymbol(OpImplies))
		case r == '↔':
			symbols = append(symbols, BinarySymbol(OpIff))
		case r == '-' && strings.HasPrefix(text[i:], "->"):
			symbols = append(symbols, BinarySymbol(OpImplies))
			width = 2
		case r == '<' && strings.HasPrefix(text[i:], "<->"):
			symbols = append(symbols, BinarySymbol(OpIff))
			width = 3
		case r == '(':
			depth++
			symbols = append(symbols, groupOpen)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, &SymbolParseError{Kind: UnbalancedParentheses, Char: r, Offset: i}
			}
			symbols = append(symbols, groupClose)
		default:
			return nil, &SymbolParseError{Kind: InvalidChar, Char: r, Offset: i}
		}
		i += width
	}

	if depth != 0 {
		return nil, &SymbolParseError{Kind: UnbalancedParentheses, Offset: len(text)}
	}
	return symbols, nil
}

// Parse builds a formula from its textual notation. Binary connectives of
// equal precedence associate to the right, so p→q→r reads as p→(q→r).
//
// Tokenization failures are returned as a *ValidationError of kind
// ParseFailure wrapping the *SymbolParseError.
func Parse(text string) (*Formula, error) {
	symbols, err := Tokenize(text)
	if err != nil {
		return nil, parseFailure(err)
	}
	return ParseSymbols(symbols)
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(text string) *Formula {
	f, err := Parse(text)
	if err != nil {
		panic("formula: MustParse(" + text + "): " + err.Error())
	}
	return f
}

// ParseLimit is Parse with a caller-chosen nesting bound. A non-positive
// maxDepth means MaxDepth.
func ParseLimit(text string, maxDepth int) (*Formula, error) {
	symbols, err := Tokenize(text)
	if err != nil {
		return nil, parseFailure(err)
	}
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	p := &parser{maxDepth: maxDepth}
	return p.parse(symbols, 0)
}

// ParseSymbols builds a formula from a token sequence.
func ParseSymbols(symbols []Symbol) (*Formula, error) {
	p := &parser{maxDepth: MaxDepth}
	return p.parse(symbols, 0)
}

type parser struct {
	maxDepth int
}

func (p *parser) parse(symbols []Symbol, depth int) (*Formula, error) {
	if depth > p.maxDepth {
		return nil, parseFailure(ErrTooDeep)
	}
	if len(symbols) == 0 {
		return nil, &ValidationError{Kind: EmptyFormula}
	}
	if len(symbols) == 1 {
		if symbols[0].Kind != KindAtom {
			return nil, &ValidationError{Kind: NoLiteral, Symbol: symbols[0]}
		}
		return NewAtom(symbols[0].Atom), nil
	}

	// strip a pair of parentheses wrapping the whole slice
	if symbols[0].Kind == KindGroupOpen {
		end, err := matchingGroup(symbols, 0)
		if err != nil {
			return nil, err
		}
		if end == len(symbols)-1 {
			return p.parse(symbols[1:end], depth+1)
		}
	}

	idx, err := lowestPrecedence(symbols)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, &ValidationError{Kind: NoConnectives}
	}

	op := symbols[idx]
	if op.Kind == KindUnary {
		if idx != 0 {
			return nil, &ValidationError{Kind: UnaryArity, Symbol: op}
		}
		operand, err := p.parse(symbols[1:], depth+1)
		if err != nil {
			return nil, err
		}
		return operand.Negate(), nil
	}
	return p.parseBinary(symbols, idx, depth)
}

// parseBinary splits symbols around the binary connective at idx.
func (p *parser) parseBinary(symbols []Symbol, idx, depth int) (*Formula, error) {
	op := symbols[idx]
	if op.Kind != KindBinary {
		return nil, &ValidationError{Kind: MismatchedSymbol, Symbol: op}
	}
	if idx == 0 || idx == len(symbols)-1 {
		return nil, &ValidationError{Kind: BinaryArity, Symbol: op}
	}

	left, err := p.parse(symbols[:idx], depth+1)
	if err != nil {
		return nil, err
	}
	right, err := p.parse(symbols[idx+1:], depth+1)
	if err != nil {
		return nil, err
	}
	return left.Combine(op.Binary, right), nil
}

// lowestPrecedence scans right to left for the loosest-binding connective
// outside parentheses. A further-left connective of equal rank wins, which
// makes same-rank binaries right-associative. It returns -1 when no
// connective sits at depth zero.
func lowestPrecedence(symbols []Symbol) (int, error) {
	idx := -1
	depth := 0
	for i := len(symbols) - 1; i >= 0; i-- {
		s := symbols[i]
		switch s.Kind {
		case KindUnary, KindBinary:
			if depth == 0 && (idx < 0 || s.Rank() <= symbols[idx].Rank()) {
				idx = i
			}
		case KindGroupClose:
			depth++
		case KindGroupOpen:
			depth--
			if depth < 0 {
				return 0, parseFailure(&SymbolParseError{Kind: UnbalancedParentheses})
			}
		}
	}
	if depth != 0 {
		return 0, parseFailure(&SymbolParseError{Kind: UnbalancedParentheses})
	}
	return idx, nil
}

// matchingGroup returns the index of the parenthesis closing the one at open.
func matchingGroup(symbols []Symbol, open int) (int, error) {
	depth := 1
	for i := open + 1; i < len(symbols); i++ {
		switch symbols[i].Kind {
		case KindGroupOpen:
			depth++
		case KindGroupClose:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, parseFailure(&SymbolParseError{Kind: UnbalancedParentheses})
}
