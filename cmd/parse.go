package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

var (
	preorderStyle bool
	spacedStyle   bool
)

type parseResult struct {
	Input    string `json:"input"`
	Formula  string `json:"formula"`
	Preorder string `json:"preorder"`
	Size     int    `json:"size"`
	Atoms    string `json:"atoms"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <formula>...",
	Short: "Parse formulas and print them back",
	Long: `Parses each formula, checks it is well formed and prints it in the chosen style.
Example) hilbert parse --spaced "p -> q -> r"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := formula.RenderOptions{Preorder: preorderStyle, ASCII: asciiStyle, Spaced: spacedStyle}

		var (
			results []parseResult
			sb      strings.Builder
		)
		for _, arg := range args {
			f, err := formula.Parse(arg)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			results = append(results, parseResult{
				Input:    arg,
				Formula:  f.Render(formula.RenderOptions{ASCII: asciiStyle}),
				Preorder: f.PreorderString(),
				Size:     f.Size(),
				Atoms:    string(f.Atoms()),
			})
			sb.WriteString(f.Render(opts))
			sb.WriteByte('\n')
		}
		return emit(cmd, results, sb.String())
	},
}

func init() {
	parseCmd.Flags().BoolVar(&preorderStyle, "preorder", false, "Print in preorder (root, left, right) without parentheses")
	parseCmd.Flags().BoolVar(&spacedStyle, "spaced", false, "Surround binary connectives with spaces")
}
