package formula

import (
	"fmt"
	"slices"
)

// Names of the built-in axiom schemas.
const (
	SymmetryAxiom       = "symmetry"
	DistributionAxiom   = "distribution"
	ContrapositionAxiom = "contraposition"
)

// Symmetry returns the schema A→(B→A).
func Symmetry() *Formula {
	a, b := NewAtom('A'), NewAtom('B')
	return a.Combine(OpImplies, b.Combine(OpImplies, NewAtom('A')))
}

// Distribution returns the schema (A→(B→C))→((A→B)→(B→C)).
func Distribution() *Formula {
	abc := NewAtom('A').Combine(OpImplies, NewAtom('B').Combine(OpImplies, NewAtom('C')))
	ab := NewAtom('A').Combine(OpImplies, NewAtom('B'))
	bc := NewAtom('B').Combine(OpImplies, NewAtom('C'))
	return abc.Combine(OpImplies, ab.Combine(OpImplies, bc))
}

// Contraposition returns the schema (A→B)→(¬B→¬A).
func Contraposition() *Formula {
	ab := NewAtom('A').Combine(OpImplies, NewAtom('B'))
	nbna := NewAtom('B').Negate().Combine(OpImplies, NewAtom('A').Negate())
	return ab.Combine(OpImplies, nbna)
}

// Axioms is a registry of named axiom schemas.
type Axioms map[string]*Formula

// BuiltinAxioms returns a fresh registry holding the three built-in schemas.
func BuiltinAxioms() Axioms {
	return Axioms{
		SymmetryAxiom:       Symmetry(),
		DistributionAxiom:   Distribution(),
		ContrapositionAxiom: Contraposition(),
	}
}

// Lookup returns the schema registered as name.
func (a Axioms) Lookup(name string) (*Formula, error) {
	schema, ok := a[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxiom, name)
	}
	return schema, nil
}

// Names returns the registered names in sorted order.
func (a Axioms) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Add parses text and registers it as name, replacing any existing schema.
func (a Axioms) Add(name, text string) error {
	schema, err := Parse(text)
	if err != nil {
		return fmt.Errorf("axiom %q: %w", name, err)
	}
	a[name] = schema
	return nil
}

// InstanceOf returns the names of every schema f is an instance of, sorted.
func (a Axioms) InstanceOf(f *Formula) []string {
	var matched []string
	for _, name := range a.Names() {
		if f.IsInstanceOf(a[name]) {
			matched = append(matched, name)
		}
	}
	return matched
}

// IsInstanceOfAxiom reports whether f is an instance of the built-in schema
// called name.
func IsInstanceOfAxiom(f *Formula, name string) (bool, error) {
	schema, err := BuiltinAxioms().Lookup(name)
	if err != nil {
		return false, err
	}
	return f.IsInstanceOf(schema), nil
}
