package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/formula"
)

type proveResult struct {
	Steps      []string `json:"steps"`
	Valid      bool     `json:"valid"`
	Conclusion string   `json:"conclusion,omitempty"`
	Error      string   `json:"error,omitempty"`
}

var proveCmd = &cobra.Command{
	Use:   "prove <file>",
	Short: "Check a Hilbert-style proof",
	Long: `Reads one step per line, written as "formula : hyp", "formula : axiom NAME"
or "formula : mp MINOR MAJOR", where MINOR and MAJOR are 0-based step numbers.
Text after '#' is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		axioms, err := loadAxioms()
		if err != nil {
			return err
		}

		proof, fileLines, err := readProof(args[0], string(content))
		if err != nil {
			return err
		}

		var (
			result proveResult
			sb     strings.Builder
		)
		for i, step := range proof {
			result.Steps = append(result.Steps, step.String())
			fmt.Fprintf(&sb, "%3d  %s\n", i, step)
		}

		checkErr := proof.Check(axioms)
		var perr *formula.ProofError
		switch {
		case errors.As(checkErr, &perr):
			result.Error = fmt.Sprintf("%s:%d: %v", args[0], fileLines[perr.Line], checkErr)
			sb.WriteString(result.Error + "\n")
		case checkErr != nil:
			return checkErr
		case len(proof) == 0:
			result.Error = "empty proof"
			sb.WriteString(result.Error + "\n")
		default:
			result.Valid = true
			result.Conclusion = render(proof.Conclusion())
			fmt.Fprintf(&sb, "proof checked: %s\n", result.Conclusion)
		}

		if err := emit(cmd, result, sb.String()); err != nil {
			return err
		}
		if !result.Valid {
			return errReportsFound
		}
		return nil
	},
}

// readProof parses the steps of a proof file and returns, for each step,
// the 1-based line it was read from.
func readProof(filename, content string) (formula.Proof, []int, error) {
	var (
		proof     formula.Proof
		fileLines []int
	)
	for i, line := range strings.Split(content, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		step, err := formula.ParseStep(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		proof = append(proof, step)
		fileLines = append(fileLines, i+1)
	}
	return proof, fileLines, nil
}
