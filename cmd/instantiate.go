package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

var instantiateCmd = &cobra.Command{
	Use:   "instantiate <formula> <atom>=<formula>...",
	Short: "Substitute formulas for atoms",
	Long: `Replaces every occurrence of each named atom simultaneously.
Example) hilbert instantiate "A -> B -> A" A="p & q" B=r`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formula.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		bindings, err := parseBindings(args[1:])
		if err != nil {
			return err
		}

		result := render(f.Instantiate(bindings))
		return emit(cmd, map[string]string{"formula": result, "bindings": bindings.String()}, result+"\n")
	},
}

func parseBindings(args []string) (formula.Bindings, error) {
	bindings := make(formula.Bindings, len(args))
	for _, arg := range args {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q is not of the form atom=formula", arg)
		}
		name = strings.TrimSpace(name)
		if utf8.RuneCountInString(name) != 1 {
			return nil, fmt.Errorf("binding %q: %q is not a single atom", arg, name)
		}
		atom, err := formula.AtomFromString(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", arg, err)
		}
		sub, err := formula.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", arg, err)
		}
		bindings[atom.Root().Atom] = sub
	}
	return bindings, nil
}
