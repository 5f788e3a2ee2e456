package formula

import "github.com/gnolang/hilbert/internal/trie"

// SubformulaSet holds every distinct subtree of a formula, compared by
// structure. Each subtree is stored as its preorder symbol sequence.
type SubformulaSet struct {
	subtrees *trie.Trie[Symbol]
}

// NewSubformulaSet collects all subtrees of f, including f itself.
func NewSubformulaSet(f *Formula) *SubformulaSet {
	s := &SubformulaSet{subtrees: trie.New[Symbol]()}
	if f == nil {
		return s
	}
	seq := f.Preorder()
	f.eachSpan(0, func(n *Formula, start int) {
		// a subtree occupies a contiguous run of its parent's preorder
		s.subtrees.Insert(seq[start : start+n.size])
	})
	return s
}

// Contains reports whether a subtree structurally equal to f is in the set.
func (s *SubformulaSet) Contains(f *Formula) bool {
	if f == nil {
		return false
	}
	return s.subtrees.Contains(f.Preorder())
}

// Len returns the number of distinct subtrees.
func (s *SubformulaSet) Len() int { return s.subtrees.Len() }

// LargestCommon walks f depth first and returns the largest subtree of f
// that is also in the set, or nil when none is. Along each path only the
// first match is taken, since everything below it is smaller. Among matches
// of equal size the leftmost wins. The returned formula is a copy.
func (s *SubformulaSet) LargestCommon(f *Formula) *Formula {
	best := s.largestCommon(f, nil)
	return best.Clone()
}

func (s *SubformulaSet) largestCommon(f, best *Formula) *Formula {
	if f == nil || f.Size() <= best.Size() {
		return best
	}
	if s.Contains(f) {
		return f
	}
	best = s.largestCommon(f.left, best)
	return s.largestCommon(f.right, best)
}

// LargestCommonSubformula returns the size of the largest subtree shared by
// a and b, or 0 when they share none.
func LargestCommonSubformula(a, b *Formula) int {
	return NewSubformulaSet(a).LargestCommon(b).Size()
}

// eachSpan calls fn for every node of f in preorder together with the
// node's start offset in f's preorder sequence.
func (f *Formula) eachSpan(start int, fn func(*Formula, int)) int {
	if f == nil {
		return start
	}
	fn(f, start)
	next := f.left.eachSpan(start+1, fn)
	return f.right.eachSpan(next, fn)
}
