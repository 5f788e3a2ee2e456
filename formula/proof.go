package formula

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotImplication is returned when modus ponens is given a major
	// premise that is not an implication.
	ErrNotImplication = errors.New("formula: major premise is not an implication")
	// ErrNotAntecedent is returned when the minor premise differs from the
	// antecedent of the implication.
	ErrNotAntecedent = errors.New("formula: minor premise is not the antecedent")
	// ErrInvalidIndex is returned when a step cites a line that does not
	// precede it.
	ErrInvalidIndex = errors.New("formula: step cites a line that does not precede it")
	// ErrNotInstance is returned when an axiom step is not an instance of
	// its schema.
	ErrNotInstance = errors.New("formula: not an instance of the axiom")
	// ErrWrongConclusion is returned when modus ponens yields a formula
	// other than the one stated on the line.
	ErrWrongConclusion = errors.New("formula: conclusion does not follow")
	// ErrMalformedStep is returned by ParseStep for an unreadable line.
	ErrMalformedStep = errors.New("formula: malformed proof step")
)

// ModusPonens derives B from A and A→B. Neither argument is consumed; the
// result is a copy of the consequent.
func ModusPonens(antecedent, implication *Formula) (*Formula, error) {
	if !implication.isBinary(OpImplies) {
		return nil, ErrNotImplication
	}
	if !implication.left.Equal(antecedent) {
		return nil, ErrNotAntecedent
	}
	return implication.right.Clone(), nil
}

// Rule is the justification of a proof step.
type Rule int

const (
	RuleHypothesis Rule = iota
	RuleAxiom
	RuleModusPonens
)

func (r Rule) String() string {
	switch r {
	case RuleHypothesis:
		return "hyp"
	case RuleAxiom:
		return "axiom"
	case RuleModusPonens:
		return "mp"
	default:
		return "?"
	}
}

// Step is one line of a Hilbert-style proof.
type Step struct {
	Formula *Formula
	Rule    Rule
	// Axiom names the schema for RuleAxiom.
	Axiom string
	// Minor and Major index the lines holding A and A→B for RuleModusPonens.
	Minor, Major int
}

// Hypothesis returns a step that assumes f.
func Hypothesis(f *Formula) Step { return Step{Formula: f, Rule: RuleHypothesis} }

// AxiomStep returns a step claiming f is an instance of the named axiom.
func AxiomStep(f *Formula, name string) Step {
	return Step{Formula: f, Rule: RuleAxiom, Axiom: name}
}

// MP returns a step claiming f follows from lines minor and major.
func MP(f *Formula, minor, major int) Step {
	return Step{Formula: f, Rule: RuleModusPonens, Minor: minor, Major: major}
}

func (s Step) String() string {
	switch s.Rule {
	case RuleAxiom:
		return fmt.Sprintf("%s : axiom %s", s.Formula, s.Axiom)
	case RuleModusPonens:
		return fmt.Sprintf("%s : mp %d %d", s.Formula, s.Minor, s.Major)
	default:
		return fmt.Sprintf("%s : hyp", s.Formula)
	}
}

// ParseStep reads a step written as "formula : rule args", where rule is
// one of "hyp", "axiom NAME" or "mp MINOR MAJOR".
func ParseStep(line string) (Step, error) {
	text, just, ok := strings.Cut(line, ":")
	if !ok {
		return Step{}, fmt.Errorf("%w: missing justification in %q", ErrMalformedStep, line)
	}
	f, err := Parse(text)
	if err != nil {
		return Step{}, err
	}

	fields := strings.Fields(just)
	if len(fields) == 0 {
		return Step{}, fmt.Errorf("%w: empty justification in %q", ErrMalformedStep, line)
	}
	switch fields[0] {
	case "hyp":
		if len(fields) != 1 {
			break
		}
		return Hypothesis(f), nil
	case "axiom":
		if len(fields) != 2 {
			break
		}
		return AxiomStep(f, fields[1]), nil
	case "mp":
		if len(fields) != 3 {
			break
		}
		minor, err1 := strconv.Atoi(fields[1])
		major, err2 := strconv.Atoi(fields[2])
		if err := errors.Join(err1, err2); err != nil {
			return Step{}, fmt.Errorf("%w: %w", ErrMalformedStep, err)
		}
		return MP(f, minor, major), nil
	}
	return Step{}, fmt.Errorf("%w: cannot read justification %q", ErrMalformedStep, strings.TrimSpace(just))
}

// Proof is an ordered list of steps. Lines are numbered from 0.
type Proof []Step

// ProofError reports the first line of a proof that fails to check.
type ProofError struct {
	Line int
	Err  error
}

func (e *ProofError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ProofError) Unwrap() error { return e.Err }

// Check verifies every line against axioms and returns a *ProofError for
// the first line that does not hold. Hypotheses are accepted as stated.
func (p Proof) Check(axioms Axioms) error {
	for i, step := range p {
		if err := p.checkStep(i, step, axioms); err != nil {
			return &ProofError{Line: i, Err: err}
		}
	}
	return nil
}

func (p Proof) checkStep(i int, step Step, axioms Axioms) error {
	if err := step.Formula.Validate(); err != nil {
		return err
	}
	switch step.Rule {
	case RuleHypothesis:
		return nil
	case RuleAxiom:
		schema, err := axioms.Lookup(step.Axiom)
		if err != nil {
			return err
		}
		if !step.Formula.IsInstanceOf(schema) {
			return fmt.Errorf("%w %s", ErrNotInstance, step.Axiom)
		}
		return nil
	case RuleModusPonens:
		if step.Minor < 0 || step.Minor >= i || step.Major < 0 || step.Major >= i {
			return fmt.Errorf("%w: mp %d %d", ErrInvalidIndex, step.Minor, step.Major)
		}
		derived, err := ModusPonens(p[step.Minor].Formula, p[step.Major].Formula)
		if err != nil {
			return err
		}
		if !derived.Equal(step.Formula) {
			return fmt.Errorf("%w: expected %s", ErrWrongConclusion, derived)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown rule %d", ErrMalformedStep, step.Rule)
	}
}

// Conclusion returns the formula on the last line, or nil for an empty
// proof.
func (p Proof) Conclusion() *Formula {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1].Formula
}
