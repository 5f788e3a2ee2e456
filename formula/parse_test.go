package formula

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchesConstruction(t *testing.T) {
	t.Parallel()

	built := NewAtom('p').Negate().Combine(OpIff, NewAtom('q'))
	parsed, err := Parse("¬p ↔ q")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(built))
	assert.False(t, parsed.Equal(NewAtom('p').Combine(OpIff, NewAtom('q')).Negate()))
}

func TestParseAssociativity(t *testing.T) {
	t.Parallel()

	right := NewAtom('p').Combine(OpImplies, NewAtom('q').Combine(OpImplies, NewAtom('r')))
	wrong := NewAtom('p').Combine(OpImplies, NewAtom('q')).Combine(OpImplies, NewAtom('r'))

	got := MustParse("p → q → r")
	assert.True(t, got.Equal(right))
	assert.False(t, got.Equal(wrong))

	got = got.Combine(OpAnd, NewAtom('s'))
	assert.True(t, got.Equal(MustParse("(p → q → r) ∧ s")))
	assert.True(t, got.Equal(MustParse("(p → (q → r)) ∧ s")))
	assert.False(t, got.Equal(MustParse("((p → q) → r) ∧ s")))
	assert.False(t, got.Equal(MustParse("p → q → r ∧ s")))
}

func TestParseParenthesizationLevels(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"(A → (B → C)) → (A → B) → B → C",
		"(A → (B → C)) → ((A → B) → B → C)",
		"(A → (B → C)) → ((A → B) → (B → C))",
		"((A → (B → C)) → ((A → B) → (B → C)))",
		"(A->(B->C))->(A->B)->B->C",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(in)
			require.NoError(t, err)
			assert.True(t, f.Equal(Distribution()), "got %s", f)
		})
	}
}

func TestParseRepeatedNegation(t *testing.T) {
	t.Parallel()

	f := MustParse("¬¬¬d")
	assert.True(t, f.Equal(NewAtom('d').Negate().Negate().Negate()))
	assert.Equal(t, "¬¬¬d", f.String())
}

func TestParseASCIIAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ascii string
		glyph string
	}{
		{"~p -> q & r", "¬p→q∧r"},
		{"!p | q", "¬p∨q"},
		{"p <-> ~~q", "p↔¬¬q"},
		{"(p -> q) -> r", "(p→q)→r"},
	}
	for _, tt := range tests {
		t.Run(tt.ascii, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(tt.ascii)
			require.NoError(t, err)
			assert.True(t, f.Equal(MustParse(tt.glyph)))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		kind      ValidationErrorKind
		parseKind ParseErrorKind
	}{
		{name: "invalid char", input: "p $ q", kind: ParseFailure, parseKind: InvalidChar},
		{name: "digit", input: "p ∧ 1", kind: ParseFailure, parseKind: InvalidChar},
		{name: "unclosed", input: "(p ∧ q", kind: ParseFailure, parseKind: UnbalancedParentheses},
		{name: "close first", input: ")p(", kind: ParseFailure, parseKind: UnbalancedParentheses},
		{name: "empty", input: "", kind: EmptyFormula},
		{name: "blank", input: "   ", kind: EmptyFormula},
		{name: "empty group", input: "()", kind: EmptyFormula},
		{name: "two atoms", input: "pq", kind: NoConnectives},
		{name: "adjacent groups", input: "(p)(q)", kind: NoConnectives},
		{name: "dangling binary", input: "p ∧", kind: BinaryArity},
		{name: "leading binary", input: "→ q", kind: BinaryArity},
		{name: "infix negation", input: "p ¬ q", kind: UnaryArity},
		{name: "lone connective", input: "¬", kind: NoLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, f)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind, "got %v", verr)

			if tt.parseKind != 0 {
				var perr *SymbolParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.parseKind, perr.Kind)
			}
		})
	}
}

func TestTokenizeReportsOffset(t *testing.T) {
	t.Parallel()

	_, err := Tokenize("p ∧ #")
	var perr *SymbolParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, '#', perr.Char)
	assert.Equal(t, len("p ∧ "), perr.Offset)
	assert.Contains(t, perr.Error(), "does not correspond to a valid symbol")
}

func TestParseDepthLimit(t *testing.T) {
	t.Parallel()

	deep := strings.Repeat("(", MaxDepth+2) + "p" + strings.Repeat(")", MaxDepth+2)
	_, err := Parse(deep)
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = ParseLimit("((p))", 1)
	assert.ErrorIs(t, err, ErrTooDeep)

	f, err := ParseLimit("(p)", 1)
	require.NoError(t, err)
	assert.Equal(t, "p", f.String())

	f, err = ParseLimit("((p))", 0)
	require.NoError(t, err)
	assert.Equal(t, "p", f.String())
}
