package formula

// Validate checks that f is well formed: atoms have no children, negations
// have only a right child, binary connectives have both children, and no
// grouping symbol appears in the tree. The first defect found in a
// depth-first, left-before-right walk is returned as a *ValidationError.
//
// The rewrite pipeline, Instantiate and the matcher assume a valid tree and
// panic otherwise.
func (f *Formula) Validate() error {
	if f == nil {
		return &ValidationError{Kind: EmptyFormula}
	}

	switch f.root.Kind {
	case KindBinary:
		if f.left == nil || f.right == nil {
			return &ValidationError{Kind: BinaryArity, Symbol: f.root}
		}
		if err := f.left.Validate(); err != nil {
			return err
		}
		return f.right.Validate()
	case KindUnary:
		if f.left != nil || f.right == nil {
			return &ValidationError{Kind: UnaryArity, Symbol: f.root}
		}
		return f.right.Validate()
	case KindAtom:
		if f.left != nil || f.right != nil {
			return &ValidationError{Kind: AtomWithChildren, Symbol: f.root}
		}
		return nil
	case KindGroupOpen, KindGroupClose:
		return &ValidationError{Kind: GroupingInTree, Symbol: f.root}
	default:
		return &ValidationError{Kind: MismatchedSymbol, Symbol: f.root}
	}
}
