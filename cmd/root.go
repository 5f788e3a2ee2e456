package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hilbert/batch"
	"github.com/gnolang/hilbert/formula"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile    string
	timeout    time.Duration
	verbose    bool
	jsonOutput bool
	outPath    string
	asciiStyle bool

	logger *zap.Logger
)

// errReportsFound makes the process exit with status 1 without printing
// anything further.
var errReportsFound = errors.New("error reports found")

var rootCmd = &cobra.Command{
	Use:              "hilbert",
	Short:            "hilbert - parse, normalize, match and check propositional formulas",
	TraverseChildren: true,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the command line and reports the error, if any, on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReportsFound) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", batch.DefaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for batch checks")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	rootCmd.PersistentFlags().BoolVar(&asciiStyle, "ascii", false, "Write connectives as ~ & | -> <->")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(cnfCmd)
	rootCmd.AddCommand(instanceCmd)
	rootCmd.AddCommand(instantiateCmd)
	rootCmd.AddCommand(lcsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(proveCmd)
}

func render(f *formula.Formula) string {
	return f.Render(formula.RenderOptions{ASCII: asciiStyle})
}

// emit writes v as JSON when --json is set and text otherwise.
func emit(cmd *cobra.Command, v any, text string) error {
	if !jsonOutput {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}

	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}
	if outPath == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(d))
		return err
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func loadAxioms() (formula.Axioms, error) {
	config, err := batch.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	return config.AxiomRegistry()
}
