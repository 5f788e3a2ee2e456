package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

var axiomNames string

type instanceResult struct {
	Axiom    string            `json:"axiom"`
	Schema   string            `json:"schema"`
	Instance bool              `json:"instance"`
	Bindings map[string]string `json:"bindings,omitempty"`
}

var instanceCmd = &cobra.Command{
	Use:   "instance <formula>",
	Short: "Check a formula against axiom schemas",
	Long: `Reports, for every axiom (or those named with --axiom), whether the formula is an
instance of it and which substitution produces it.
Example) hilbert instance --axiom symmetry "p -> q -> p"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formula.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		axioms, err := loadAxioms()
		if err != nil {
			return err
		}

		names := splitList(axiomNames)
		if len(names) == 0 {
			names = axioms.Names()
		}

		var (
			results []instanceResult
			sb      strings.Builder
		)
		for _, name := range names {
			schema, err := axioms.Lookup(name)
			if err != nil {
				return err
			}
			result := instanceResult{Axiom: name, Schema: render(schema)}
			bindings, ok := formula.Match(f, schema)
			if ok {
				result.Instance = true
				result.Bindings = make(map[string]string, len(bindings))
				for atom, sub := range bindings {
					result.Bindings[string(atom)] = render(sub)
				}
				fmt.Fprintf(&sb, "%s: %s %s\n", name, result.Schema, bindings)
			} else {
				fmt.Fprintf(&sb, "%s: no\n", name)
			}
			results = append(results, result)
		}
		return emit(cmd, results, sb.String())
	},
}

func init() {
	instanceCmd.Flags().StringVar(&axiomNames, "axiom", "", "Comma-separated list of axioms to check")
}
