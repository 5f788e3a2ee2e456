package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

type validateResult struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <formula>...",
	Short: "Report whether formulas are well formed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			results []validateResult
			sb      strings.Builder
			invalid bool
		)
		for _, arg := range args {
			f, err := formula.Parse(arg)
			if err == nil {
				err = f.Validate()
			}
			if err != nil {
				invalid = true
				results = append(results, validateResult{Input: arg, Error: err.Error()})
				fmt.Fprintf(&sb, "invalid  %s: %v\n", arg, err)
				continue
			}
			results = append(results, validateResult{Input: arg, Valid: true})
			fmt.Fprintf(&sb, "valid    %s\n", render(f))
		}

		if err := emit(cmd, results, sb.String()); err != nil {
			return err
		}
		if invalid {
			return errReportsFound
		}
		return nil
	},
}
