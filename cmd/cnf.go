package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

type cnfResult struct {
	Input string `json:"input"`
	CNF   string `json:"cnf"`
}

var cnfCmd = &cobra.Command{
	Use:   "cnf <formula>...",
	Short: "Rewrite formulas into conjunctive normal form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			results []cnfResult
			sb      strings.Builder
		)
		for _, arg := range args {
			f, err := formula.Parse(arg)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			cnf, err := formula.ConjunctiveNormalForm(f)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			results = append(results, cnfResult{Input: arg, CNF: render(cnf)})
			sb.WriteString(render(cnf))
			sb.WriteByte('\n')
		}
		return emit(cmd, results, sb.String())
	},
}
