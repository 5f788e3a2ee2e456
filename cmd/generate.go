package cmd

import (
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

var (
	generateSteps int
	generateCount int
	generateSeed  uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random formulas",
	Long: `Builds formulas from a random atom by repeatedly negating it or combining it
with another random atom. A non-zero --seed makes the output reproducible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rng *rand.Rand
		if generateSeed != 0 {
			rng = rand.New(rand.NewPCG(generateSeed, generateSeed))
		}

		formulas := make([]string, 0, generateCount)
		for range generateCount {
			formulas = append(formulas, render(formula.GenerateWith(rng, generateSteps)))
		}

		text := ""
		if len(formulas) > 0 {
			text = strings.Join(formulas, "\n") + "\n"
		}
		return emit(cmd, formulas, text)
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateSteps, "steps", 5, "Maximum number of construction steps")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of formulas")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed, 0 for a random one")
}
