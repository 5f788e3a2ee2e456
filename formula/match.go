package formula

import (
	"slices"
	"strings"
)

// Bindings maps atom names to the formulas that replace them.
type Bindings map[rune]*Formula

// String renders bindings in atom order, e.g. {A ↦ p→q, B ↦ r}.
func (b Bindings) String() string {
	atoms := make([]rune, 0, len(b))
	for r := range b {
		atoms = append(atoms, r)
	}
	slices.Sort(atoms)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range atoms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune(r)
		sb.WriteString(" ↦ ")
		sb.WriteString(b[r].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Instantiate returns a copy of f in which every atom bound in bindings is
// replaced by its own deep copy of the bound formula. Atoms without a binding
// are kept. Substituted formulas are not themselves rewritten, so the
// substitution is simultaneous. f must be valid.
func (f *Formula) Instantiate(bindings Bindings) *Formula {
	return transformPostOrder(f.Clone(), func(n *Formula) *Formula {
		if n.root.Kind != KindAtom {
			return n
		}
		if bound, ok := bindings[n.root.Atom]; ok {
			return bound.Clone()
		}
		return n
	})
}

// IsInstanceOf reports whether f can be obtained from schema by substituting
// a formula for each of schema's atoms.
func (f *Formula) IsInstanceOf(schema *Formula) bool {
	_, ok := Match(f, schema)
	return ok
}

// Match walks candidate and schema together, top down and left before
// right. The first time a schema atom is met it is bound to the candidate
// subtree at that position; every later occurrence must be structurally
// equal to that first binding. Bindings are never revised, so no
// backtracking takes place.
//
// On success the substitution is returned as independent copies.
func Match(candidate, schema *Formula) (Bindings, bool) {
	seen := make(map[rune]*Formula)
	if !matchTraverse(candidate, schema, seen) {
		return nil, false
	}
	bindings := make(Bindings, len(seen))
	for r, sub := range seen {
		bindings[r] = sub.Clone()
	}
	return bindings, true
}

func matchTraverse(candidate, schema *Formula, seen map[rune]*Formula) bool {
	if schema.root.Kind == KindAtom {
		if bound, ok := seen[schema.root.Atom]; ok {
			return candidate.Equal(bound)
		}
		seen[schema.root.Atom] = candidate
		return true
	}
	if candidate.root != schema.root {
		return false
	}

	hasLeft := candidate.left != nil
	hasRight := candidate.right != nil
	if hasLeft != (schema.left != nil) || hasRight != (schema.right != nil) {
		return false
	}
	switch {
	case hasLeft && hasRight:
		return matchTraverse(candidate.left, schema.left, seen) &&
			matchTraverse(candidate.right, schema.right, seen)
	case hasLeft:
		return matchTraverse(candidate.left, schema.left, seen)
	case hasRight:
		return matchTraverse(candidate.right, schema.right, seen)
	default:
		return false
	}
}
