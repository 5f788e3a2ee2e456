package internal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gnolang/hilbert/formula"
	tt "github.com/gnolang/hilbert/internal/types"
)

// Check names.
const (
	CheckValidate      = "validate"
	CheckCNF           = "cnf"
	CheckAxiomInstance = "axiom-instance"
	CheckRoundTrip     = "roundtrip"
	CheckProof         = "proof"
)

// Entry is one formula line of an input file. Formula is nil when the line
// failed to parse, in which case Err holds the reason.
type Entry struct {
	Filename string
	Line     int
	Text     string
	Formula  *formula.Formula
	Err      error
	// Step is set for lines of a proof file.
	Step *formula.Step
}

// Check inspects one entry at a time.
type Check interface {
	// Run returns the reports for entry. It must not modify entry.Formula.
	Run(entry Entry) []tt.Report

	// Name returns the name of the check.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type checkConstructor func(axioms formula.Axioms) Check

var allCheckConstructors = map[string]checkConstructor{
	CheckValidate: func(formula.Axioms) Check {
		return &ValidateCheck{severityHolder{tt.SeverityError}}
	},
	CheckCNF: func(formula.Axioms) Check {
		return &CNFCheck{severityHolder{tt.SeverityOff}}
	},
	CheckAxiomInstance: func(a formula.Axioms) Check {
		return &AxiomInstanceCheck{severityHolder: severityHolder{tt.SeverityInfo}, axioms: a}
	},
	CheckRoundTrip: func(formula.Axioms) Check {
		return &RoundTripCheck{severityHolder{tt.SeverityWarning}}
	},
	CheckProof: func(a formula.Axioms) Check {
		return &ProofCheck{severityHolder: severityHolder{tt.SeverityError}, axioms: a}
	},
}

// CheckNames returns the names of all known checks.
func CheckNames() []string {
	return []string{CheckValidate, CheckCNF, CheckAxiomInstance, CheckRoundTrip, CheckProof}
}

type severityHolder struct {
	severity tt.Severity
}

func (h *severityHolder) Severity() tt.Severity     { return h.severity }
func (h *severityHolder) SetSeverity(s tt.Severity) { h.severity = s }

func (h *severityHolder) report(name string, entry Entry, msg string) tt.Report {
	return tt.Report{
		Check:    name,
		Severity: h.severity,
		Filename: entry.Filename,
		Line:     entry.Line,
		Formula:  entry.Text,
		Message:  msg,
	}
}

// ValidateCheck reports lines that do not parse into a well-formed formula.
type ValidateCheck struct{ severityHolder }

func (c *ValidateCheck) Name() string { return CheckValidate }

func (c *ValidateCheck) Run(entry Entry) []tt.Report {
	if entry.Err == nil {
		return nil
	}
	r := c.report(CheckValidate, entry, entry.Err.Error())
	r.Column = errorColumn(entry.Text, entry.Err)
	return []tt.Report{r}
}

// errorColumn maps the byte offset of a tokenizer error to a rune column.
func errorColumn(text string, err error) int {
	var perr *formula.SymbolParseError
	if !errors.As(err, &perr) || perr.Kind != formula.InvalidChar {
		return 0
	}
	if perr.Offset > len(text) {
		return 0
	}
	return utf8.RuneCountInString(text[:perr.Offset]) + 1
}

// CNFCheck reports the conjunctive normal form of every formula.
type CNFCheck struct{ severityHolder }

func (c *CNFCheck) Name() string { return CheckCNF }

func (c *CNFCheck) Run(entry Entry) []tt.Report {
	if entry.Formula == nil {
		return nil
	}
	cnf, err := formula.ConjunctiveNormalForm(entry.Formula)
	if err != nil {
		return nil
	}
	r := c.report(CheckCNF, entry, "conjunctive normal form")
	r.Result = cnf.String()
	return []tt.Report{r}
}

// AxiomInstanceCheck reports formulas that are instances of a known axiom.
type AxiomInstanceCheck struct {
	severityHolder
	axioms formula.Axioms
}

func (c *AxiomInstanceCheck) Name() string { return CheckAxiomInstance }

func (c *AxiomInstanceCheck) Run(entry Entry) []tt.Report {
	if entry.Formula == nil {
		return nil
	}
	names := c.axioms.InstanceOf(entry.Formula)
	if len(names) == 0 {
		return nil
	}
	r := c.report(CheckAxiomInstance, entry, "instance of "+strings.Join(names, ", "))
	r.Result = strings.Join(names, ",")
	return []tt.Report{r}
}

// RoundTripCheck reports formulas whose rendering parses back to a
// different tree.
type RoundTripCheck struct{ severityHolder }

func (c *RoundTripCheck) Name() string { return CheckRoundTrip }

func (c *RoundTripCheck) Run(entry Entry) []tt.Report {
	if entry.Formula == nil {
		return nil
	}
	text := entry.Formula.String()
	back, err := formula.Parse(text)
	if err == nil && back.Equal(entry.Formula) {
		return nil
	}
	msg := fmt.Sprintf("rendering %q does not parse back to the same formula", text)
	if err != nil {
		msg = fmt.Sprintf("rendering %q does not parse: %v", text, err)
	}
	r := c.report(CheckRoundTrip, entry, msg)
	r.Result = text
	return []tt.Report{r}
}

// ProofCheck verifies the lines of a proof file as a whole. Run is a no-op;
// the engine calls CheckProof instead.
type ProofCheck struct {
	severityHolder
	axioms formula.Axioms
}

func (c *ProofCheck) Name() string { return CheckProof }

func (c *ProofCheck) Run(Entry) []tt.Report { return nil }

// CheckProof checks entries as consecutive proof lines and reports the first
// line that fails, or the conclusion when every line holds.
func (c *ProofCheck) CheckProof(entries []Entry) []tt.Report {
	proof := make(formula.Proof, 0, len(entries))
	for _, e := range entries {
		if e.Step == nil {
			// unreadable lines are reported by the validate check
			return nil
		}
		proof = append(proof, *e.Step)
	}
	if len(proof) == 0 {
		return nil
	}

	err := proof.Check(c.axioms)
	var perr *formula.ProofError
	if errors.As(err, &perr) {
		return []tt.Report{c.report(CheckProof, entries[perr.Line], err.Error())}
	}

	last := entries[len(entries)-1]
	r := c.report(CheckProof, last, "proof checked")
	r.Severity = tt.SeverityInfo
	r.Result = proof.Conclusion().String()
	return []tt.Report{r}
}
