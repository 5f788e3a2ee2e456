package formula

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Formula stores a propositional formula as a binary tree: connectives at
// the internal nodes, atoms at the leaves.
//
// Every child is owned by exactly one parent. Operations documented as
// consuming (Negate, Combine, the rewrite passes, ...) take ownership of their
// receiver and arguments: the caller must not use them afterwards and should
// Clone first to keep an independent copy.
type Formula struct {
	root  Symbol
	left  *Formula
	right *Formula
	size  int
}

// NewAtom returns the atomic formula named r.
func NewAtom(r rune) *Formula {
	return &Formula{root: AtomSymbol(r), size: 1}
}

// AtomFromString builds an atom from the first character of id.
func AtomFromString(id string) (*Formula, error) {
	if id == "" {
		return nil, ErrNoIdentifier
	}
	r, _ := utf8.DecodeRuneInString(id)
	if !isAtomLetter(r) {
		return nil, &SymbolParseError{Kind: InvalidChar, Char: r}
	}
	return NewAtom(r), nil
}

// Assemble links root to the given children without any checks. It exists
// for hosts that build trees from another representation; the result must be
// passed through Validate before any other operation.
func Assemble(root Symbol, left, right *Formula) *Formula {
	f := &Formula{root: root, left: left, right: right}
	f.resize()
	return f
}

// Root returns the symbol at the top of the tree.
func (f *Formula) Root() Symbol { return f.root }

// Left returns the left child, or nil.
func (f *Formula) Left() *Formula { return f.left }

// Right returns the right child, or nil.
func (f *Formula) Right() *Formula { return f.right }

// Size returns the number of nodes in the tree.
func (f *Formula) Size() int {
	if f == nil {
		return 0
	}
	return f.size
}

// IsAtom reports whether f is a single proposition.
func (f *Formula) IsAtom() bool { return f.root.Kind == KindAtom }

// Negate consumes f and returns ¬f. The operand is always the right
// child of the result.
func (f *Formula) Negate() *Formula {
	return &Formula{root: NotSymbol(), right: f, size: f.size + 1}
}

// Combine consumes f and other and returns f op other.
func (f *Formula) Combine(op BinaryOp, other *Formula) *Formula {
	return &Formula{
		root:  BinarySymbol(op),
		left:  f,
		right: other,
		size:  f.size + other.size + 1,
	}
}

// LeftCombine is Combine with f placed on the right: other op f.
func (f *Formula) LeftCombine(op BinaryOp, other *Formula) *Formula {
	return other.Combine(op, f)
}

// CombineNamed combines a and b under the connective called name.
func CombineNamed(a *Formula, name string, b *Formula) (*Formula, error) {
	op, err := ParseConnective(name)
	if err != nil {
		return nil, err
	}
	return a.Combine(op, b), nil
}

// Connect returns a copy of a → b, leaving both arguments untouched.
func Connect(a, b *Formula) *Formula {
	return a.Clone().Combine(OpImplies, b.Clone())
}

// Refute returns a copy of ¬f, leaving f untouched.
func Refute(f *Formula) *Formula {
	return f.Clone().Negate()
}

// Clone returns a deep copy of f.
func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	return &Formula{
		root:  f.root,
		left:  f.left.Clone(),
		right: f.right.Clone(),
		size:  f.size,
	}
}

// Equal reports structural equality: the same shape with the same symbols at
// every position. It is not logical equivalence; a∨b and b∨a differ.
func (f *Formula) Equal(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.size != other.size {
		return false
	}
	return slices.Equal(f.Preorder(), other.Preorder())
}

// Atoms returns the distinct atom names in f, sorted.
func (f *Formula) Atoms() []rune {
	seen := make(map[rune]struct{})
	f.collectAtoms(seen)
	atoms := make([]rune, 0, len(seen))
	for r := range seen {
		atoms = append(atoms, r)
	}
	slices.Sort(atoms)
	return atoms
}

func (f *Formula) collectAtoms(seen map[rune]struct{}) {
	if f == nil {
		return
	}
	if f.root.Kind == KindAtom {
		seen[f.root.Atom] = struct{}{}
	}
	f.left.collectAtoms(seen)
	f.right.collectAtoms(seen)
}

// SwapChildren consumes f and returns it with its operands exchanged. Non
// binary formulas are returned unchanged.
func (f *Formula) SwapChildren() *Formula {
	if f.root.Kind != KindBinary {
		return f
	}
	left, right := f.takeChildren()
	return right.Combine(f.root.Binary, left)
}

// Recombine relabels the connective of a binary formula in place.
func (f *Formula) Recombine(op BinaryOp) *Formula {
	if f.root.Kind == KindBinary {
		f.root = BinarySymbol(op)
	}
	return f
}

// RotateLeft consumes f and changes precedence between f's connective and
// that of its right child:
//
//	  →                ∧
//	 / \              / \
//	A   ∧     =>     →   C
//	   / \          / \
//	  B   C        A   B
//
// Formulas without a binary right child are returned unchanged.
func (f *Formula) RotateLeft() *Formula {
	if f.root.Kind != KindBinary || f.right == nil || f.right.root.Kind != KindBinary {
		return f
	}
	outer, inner := f.root.Binary, f.right.root.Binary
	a, bc := f.takeChildren()
	b, c := bc.takeChildren()
	return a.Combine(outer, b).Combine(inner, c)
}

// RotateRight is the inverse of RotateLeft.
func (f *Formula) RotateRight() *Formula {
	if f.root.Kind != KindBinary || f.left == nil || f.left.root.Kind != KindBinary {
		return f
	}
	outer, inner := f.root.Binary, f.left.root.Binary
	ab, c := f.takeChildren()
	a, b := ab.takeChildren()
	return a.Combine(inner, b.Combine(outer, c))
}

// child returns the requested child, panicking when it is missing. Callers
// rely on a prior Validate.
func (f *Formula) child(right bool) *Formula {
	c := f.left
	if right {
		c = f.right
	}
	if c == nil {
		side := "left"
		if right {
			side = "right"
		}
		panic(fmt.Sprintf("formula: %s node has no %s child; Validate before transforming", f.root, side))
	}
	return c
}

func (f *Formula) takeChildren() (*Formula, *Formula) {
	return f.child(false), f.child(true)
}

// resize recomputes the cached size from the children's cached sizes.
func (f *Formula) resize() {
	f.size = 1 + f.left.Size() + f.right.Size()
}

func (f *Formula) isBinary(op BinaryOp) bool {
	return f.root.Kind == KindBinary && f.root.Binary == op
}

func (f *Formula) isNot() bool {
	return f.root.Kind == KindUnary && f.root.Unary == OpNot
}

func isAtomLetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}
