package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hilbert/batch"
	"github.com/gnolang/hilbert/formatter"
	"github.com/gnolang/hilbert/internal"
	tt "github.com/gnolang/hilbert/internal/types"
)

var (
	ignoreChecks string
	ignorePaths  string
	watchMode    bool
	useCache     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <paths...>",
	Short: "Run the configured checks over formula and proof files",
	Long: `Checks every formula file (.wff, .prop) one line at a time and every proof file
(.proof) as a whole. Exits with status 1 when an error is reported.
Example) hilbert check --ignore cnf,roundtrip ./theories`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := batch.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		engine, err := batch.NewFromConfig(config)
		if err != nil {
			return fmt.Errorf("failed to initialize engine: %w", err)
		}
		engine.SetLogger(logger)

		for _, name := range splitList(ignoreChecks) {
			engine.IgnoreCheck(name)
		}
		for _, path := range splitList(ignorePaths) {
			engine.IgnorePath(path)
		}

		if useCache && config.CacheDir != "" {
			var deps []string
			if _, err := os.Stat(cfgFile); err == nil {
				deps = append(deps, cfgFile)
			}
			cache, err := internal.NewCache(config.CacheDir, deps...)
			if err != nil {
				return err
			}
			engine.SetCache(cache)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		reports, err := batch.ProcessFiles(ctx, logger, engine, args, batch.ProcessFile)
		if err != nil {
			return err
		}
		if err := printReports(cmd, reports); err != nil {
			return err
		}

		if watchMode {
			return watch(cmd, engine, args)
		}
		if hasErrors(reports) {
			return errReportsFound
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreChecks, "ignore", "", "Comma-separated list of checks to ignore")
	checkCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	checkCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Keep checking files as they change")
	checkCmd.Flags().BoolVar(&useCache, "cache", false, "Reuse results for unchanged files")
}

func printReports(cmd *cobra.Command, reports []tt.Report) error {
	internal.SortReports(reports)

	reportsByFile := make(map[string][]tt.Report)
	for _, r := range reports {
		reportsByFile[r.Filename] = append(reportsByFile[r.Filename], r)
	}

	sortedFiles := make([]string, 0, len(reportsByFile))
	for filename := range reportsByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	text := ""
	for _, filename := range sortedFiles {
		text += formatter.Render(reportsByFile[filename])
	}
	text += formatter.Summary(reports) + "\n"

	return emit(cmd, reportsByFile, text)
}

func hasErrors(reports []tt.Report) bool {
	for _, r := range reports {
		if r.Severity == tt.SeverityError {
			return true
		}
	}
	return false
}

func watch(cmd *cobra.Command, engine *internal.Engine, paths []string) error {
	dirs := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			path = filepath.Dir(path)
		}
		dirs = append(dirs, path)
	}

	w, err := internal.NewWatcher(engine, dirs...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if logger != nil {
		logger.Info("Watching for changes", zap.Strings("dirs", dirs))
	}
	err = w.Run(ctx, func(filename string, reports []tt.Report) {
		if err := printReports(cmd, reports); err != nil && logger != nil {
			logger.Error("Error printing reports", zap.String("file", filename), zap.Error(err))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
