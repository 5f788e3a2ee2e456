package formula

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjunctiveNormalForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"p", "p"},
		{"p→q", "¬p∨q"},
		{"p↔q", "(¬p∨q)∧(¬q∨p)"},
		{"¬(p∧q)", "¬p∨¬q"},
		{"¬(p∨q)", "¬p∧¬q"},
		{"¬¬¬d", "¬d"},
		{"¬(p→q)", "p∧¬q"},
		{"p∨q∧r", "(p∨q)∧(p∨r)"},
		{"p∧q∨r", "(p∨r)∧(q∨r)"},
		{"¬(p∧(q∨r))", "(¬p∨¬q)∧(¬p∨¬r)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			in := MustParse(tt.input)
			got, err := ConjunctiveNormalForm(in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.input, in.String(), "input must be left untouched")
			assertCNF(t, got)
			assertEquivalent(t, in, got)
		})
	}
}

func TestRewritePasses(t *testing.T) {
	t.Parallel()

	t.Run("eliminate implications", func(t *testing.T) {
		t.Parallel()
		f := EliminateImplications(MustParse("¬(p→q)∧r↔s"))
		assert.Equal(t, "(¬(¬(¬p∨q)∧r)∨s)∧(¬s∨¬(¬p∨q)∧r)", f.String())
	})

	t.Run("push negations recursively", func(t *testing.T) {
		t.Parallel()
		f := PushNegations(MustParse("¬((p∨q)∧¬r)"))
		assert.Equal(t, "¬p∧¬q∨¬¬r", f.String())
	})

	t.Run("strip double negations", func(t *testing.T) {
		t.Parallel()
		f := StripDoubleNegations(MustParse("¬¬p∧¬¬¬¬q∨¬¬¬r"))
		assert.Equal(t, "p∧q∨¬r", f.String())
		assert.Equal(t, 6, f.Size())
	})

	t.Run("distribute both sides", func(t *testing.T) {
		t.Parallel()
		f := DistributeDisjunctions(MustParse("(p∧q)∨(r∧s)"))
		assertCNF(t, f)
		assertEquivalent(t, MustParse("(p∧q)∨(r∧s)"), f)
		assert.Equal(t, 15, f.Size())
	})
}

func TestConjunctiveNormalFormGenerated(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	for range 100 {
		f := GenerateWith(rng, 8)
		got, err := ConjunctiveNormalForm(f)
		require.NoError(t, err)
		require.NoError(t, got.Validate())
		assertCNF(t, got)
		assertEquivalent(t, f, got)
	}
}

// assertCNF checks that only ∧ ∨ ¬ remain, ¬ applies to atoms only, and no
// disjunction contains a conjunction.
func assertCNF(t *testing.T, f *Formula) {
	t.Helper()
	var walk func(f *Formula, underOr bool)
	walk = func(f *Formula, underOr bool) {
		switch f.root.Kind {
		case KindUnary:
			require.True(t, f.right.IsAtom(), "negation over %s", f.right)
		case KindBinary:
			switch f.root.Binary {
			case OpImplies, OpIff:
				require.Failf(t, "not in CNF", "%s still has %s", f, f.root)
			case OpAnd:
				require.False(t, underOr, "conjunction %s below a disjunction", f)
			}
			or := underOr || f.root.Binary == OpOr
			walk(f.left, or)
			walk(f.right, or)
		}
	}
	walk(f, false)
}

// assertEquivalent compares truth tables over the atoms of both formulas.
func assertEquivalent(t *testing.T, a, b *Formula) {
	t.Helper()
	seen := make(map[rune]struct{})
	a.collectAtoms(seen)
	b.collectAtoms(seen)
	atoms := make([]rune, 0, len(seen))
	for r := range seen {
		atoms = append(atoms, r)
	}

	for mask := 0; mask < 1<<len(atoms); mask++ {
		val := make(map[rune]bool, len(atoms))
		for i, r := range atoms {
			val[r] = mask&(1<<i) != 0
		}
		require.Equal(t, eval(a, val), eval(b, val), "%s and %s differ under %v", a, b, val)
	}
}

func eval(f *Formula, val map[rune]bool) bool {
	switch f.root.Kind {
	case KindAtom:
		return val[f.root.Atom]
	case KindUnary:
		return !eval(f.right, val)
	}
	l, r := eval(f.left, val), eval(f.right, val)
	switch f.root.Binary {
	case OpAnd:
		return l && r
	case OpOr:
		return l || r
	case OpImplies:
		return !l || r
	default:
		return l == r
	}
}
