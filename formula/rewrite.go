package formula

// The passes below each consume their input, assume it is valid, and return
// the rewritten tree. They rebuild nodes through Negate and Combine so cached
// sizes stay consistent.

// ConjunctiveNormalForm validates f and returns a rewritten copy in
// conjunctive normal form: only ∧, ∨ and ¬ remain, ¬ applies only to atoms,
// and no ∨ has an ∧ operand. f itself is left untouched. No clause is
// simplified or deduplicated.
func ConjunctiveNormalForm(f *Formula) (*Formula, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return ToCNF(f.Clone()), nil
}

// ToCNF consumes a valid formula and runs the four rewrite passes in order.
func ToCNF(f *Formula) *Formula {
	f = EliminateImplications(f)
	f = PushNegations(f)
	f = StripDoubleNegations(f)
	return DistributeDisjunctions(f)
}

// EliminateImplications rewrites a→b as ¬a∨b and a↔b as (¬a∨b)∧(¬b∨a).
func EliminateImplications(f *Formula) *Formula {
	return transformPostOrder(f, func(n *Formula) *Formula {
		return deIff(deImply(n))
	})
}

// PushNegations applies De Morgan's laws: ¬(a∧b) becomes ¬a∨¬b and ¬(a∨b)
// becomes ¬a∧¬b. Negations are carried down until they reach an atom or
// another negation.
func PushNegations(f *Formula) *Formula {
	return transformPostOrder(f, deMorgan)
}

// StripDoubleNegations collapses every ¬¬a to a.
func StripDoubleNegations(f *Formula) *Formula {
	return transformPostOrder(f, deNegate)
}

// DistributeDisjunctions rewrites a∨(b∧c) as (a∨b)∧(a∨c) and (a∧b)∨c as
// (a∨c)∧(b∨c) until no disjunction has a conjunction operand.
func DistributeDisjunctions(f *Formula) *Formula {
	return transformPostOrder(f, splitConjunction)
}

// transformPostOrder rewrites the children of f first, then f itself.
func transformPostOrder(f *Formula, rule func(*Formula) *Formula) *Formula {
	switch f.root.Kind {
	case KindBinary:
		f.left = transformPostOrder(f.child(false), rule)
		f.right = transformPostOrder(f.child(true), rule)
	case KindUnary:
		f.right = transformPostOrder(f.child(true), rule)
	}
	f.resize()
	return rule(f)
}

func deImply(f *Formula) *Formula {
	if !f.isBinary(OpImplies) {
		return f
	}
	a, b := f.takeChildren()
	return a.Negate().Combine(OpOr, b)
}

func deIff(f *Formula) *Formula {
	if !f.isBinary(OpIff) {
		return f
	}
	a, b := f.takeChildren()
	backward := b.Clone().Negate().Combine(OpOr, a.Clone())
	return a.Negate().Combine(OpOr, b).Combine(OpAnd, backward)
}

func deMorgan(f *Formula) *Formula {
	if !f.isNot() {
		return f
	}
	inner := f.child(true)
	var dual BinaryOp
	switch {
	case inner.isBinary(OpAnd):
		dual = OpOr
	case inner.isBinary(OpOr):
		dual = OpAnd
	default:
		return f
	}
	a, b := inner.takeChildren()
	return deMorgan(a.Negate()).Combine(dual, deMorgan(b.Negate()))
}

func deNegate(f *Formula) *Formula {
	for f.isNot() && f.child(true).isNot() {
		f = f.right.right
	}
	return f
}

func splitConjunction(f *Formula) *Formula {
	if !f.isBinary(OpOr) {
		return f
	}

	switch {
	case f.child(true).isBinary(OpAnd):
		a := f.left.Clone()
		// a∨(b∧c) => (a∨b)∧c
		left, c := f.RotateLeft().takeChildren()
		return splitConjunction(left).Combine(OpAnd, splitConjunction(c.LeftCombine(OpOr, a)))
	case f.child(false).isBinary(OpAnd):
		c := f.right.Clone()
		// (a∧b)∨c => a∧(b∨c)
		a, right := f.RotateRight().takeChildren()
		return splitConjunction(a.Combine(OpOr, c)).Combine(OpAnd, splitConjunction(right))
	}
	return f
}
