package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

type lcsResult struct {
	Size       int    `json:"size"`
	Subformula string `json:"subformula,omitempty"`
}

var lcsCmd = &cobra.Command{
	Use:   "lcs <formula> <formula>",
	Short: "Find the largest subformula two formulas share",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := formula.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		b, err := formula.Parse(args[1])
		if err != nil {
			return fmt.Errorf("%q: %w", args[1], err)
		}

		var result lcsResult
		if common := formula.NewSubformulaSet(a).LargestCommon(b); common != nil {
			result = lcsResult{Size: common.Size(), Subformula: render(common)}
		}
		text := fmt.Sprintf("%d\n", result.Size)
		if result.Subformula != "" {
			text = fmt.Sprintf("%d\t%s\n", result.Size, result.Subformula)
		}
		return emit(cmd, result, text)
	},
}
