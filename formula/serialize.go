package formula

import "strings"

// RenderOptions selects how a formula is written out.
type RenderOptions struct {
	// Preorder writes root, left, right without parentheses.
	Preorder bool
	// ASCII uses ~ & | -> <-> instead of the logic glyphs.
	ASCII bool
	// Spaced surrounds binary connectives with spaces in inorder form and
	// separates every symbol in preorder form.
	Spaced bool
}

// Preorder returns the symbols of f in root, left, right order. The sequence
// is a structural fingerprint: two valid formulas are equal exactly when
// their preorder sequences are.
func (f *Formula) Preorder() []Symbol {
	seq := make([]Symbol, 0, f.Size())
	return f.appendPreorder(seq)
}

func (f *Formula) appendPreorder(seq []Symbol) []Symbol {
	if f == nil {
		return seq
	}
	seq = append(seq, f.root)
	seq = f.left.appendPreorder(seq)
	return f.right.appendPreorder(seq)
}

// Inorder returns the infix symbol sequence of f with the fewest
// parentheses that Parse needs to rebuild the same tree. A left operand is
// wrapped when it binds no tighter than its parent, a right operand only when
// it binds strictly looser, since equal ranks associate to the right.
func (f *Formula) Inorder() []Symbol {
	seq := make([]Symbol, 0, f.Size()*2)
	return f.appendInorder(seq)
}

func (f *Formula) appendInorder(seq []Symbol) []Symbol {
	if l := f.left; l != nil {
		wrap := l.root.Rank() <= f.root.Rank()
		seq = appendGrouped(seq, l, wrap)
	}
	seq = append(seq, f.root)
	if r := f.right; r != nil {
		wrap := r.root.Rank() < f.root.Rank()
		seq = appendGrouped(seq, r, wrap)
	}
	return seq
}

func appendGrouped(seq []Symbol, f *Formula, wrap bool) []Symbol {
	if wrap {
		seq = append(seq, groupOpen)
	}
	seq = f.appendInorder(seq)
	if wrap {
		seq = append(seq, groupClose)
	}
	return seq
}

// String renders f in compact inorder form, e.g. (p→q)→r∧s.
func (f *Formula) String() string {
	if f == nil {
		return ""
	}
	return f.Render(RenderOptions{})
}

// PreorderString renders f in compact preorder form, e.g. ↔¬pq.
func (f *Formula) PreorderString() string {
	return f.Render(RenderOptions{Preorder: true})
}

// Render writes f according to opts.
func (f *Formula) Render(opts RenderOptions) string {
	var seq []Symbol
	if opts.Preorder {
		seq = f.Preorder()
	} else {
		seq = f.Inorder()
	}

	var sb strings.Builder
	for i, s := range seq {
		glyph := s.glyph(opts.ASCII)
		switch {
		case opts.Spaced && opts.Preorder:
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyph)
		case opts.Spaced && s.Kind == KindBinary:
			sb.WriteByte(' ')
			sb.WriteString(glyph)
			sb.WriteByte(' ')
		default:
			sb.WriteString(glyph)
		}
	}
	return sb.String()
}

// Key returns the compact preorder form of f, suitable as a map key for
// structural identity.
func (f *Formula) Key() string {
	return f.PreorderString()
}
