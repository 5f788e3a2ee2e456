// Package batch runs the check engine over many formula files and sources
// and loads its configuration.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/hilbert/formula"
	"github.com/gnolang/hilbert/internal"
	tt "github.com/gnolang/hilbert/internal/types"
	"github.com/gnolang/hilbert/scanner"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = ".hilbert.yaml"

// ProgressOutput receives the progress bar drawn while checking a
// directory. Set it to io.Discard to silence it.
var ProgressOutput io.Writer = os.Stderr

type Checker interface {
	Run(filename string) ([]tt.Report, error)
	RunSource(source []byte) ([]tt.Report, error)
	IgnoreCheck(name string)
	IgnorePath(path string)
}

// Config is the content of the configuration file.
type Config struct {
	Name string `yaml:"name"`
	// Axioms maps extra schema names to formula text. They are added to
	// the built-in axioms and replace a built-in of the same name.
	Axioms   map[string]string         `yaml:"axioms,omitempty"`
	Checks   map[string]tt.ConfigCheck `yaml:"checks"`
	MaxDepth int                       `yaml:"max_depth,omitempty"`
	CacheDir string                    `yaml:"cache_dir,omitempty"`
}

// DefaultConfig lists every check with its default severity.
func DefaultConfig() Config {
	return Config{
		Name: "hilbert",
		Checks: map[string]tt.ConfigCheck{
			internal.CheckValidate:      {Severity: tt.SeverityError},
			internal.CheckCNF:           {Severity: tt.SeverityOff},
			internal.CheckAxiomInstance: {Severity: tt.SeverityInfo},
			internal.CheckRoundTrip:     {Severity: tt.SeverityWarning},
			internal.CheckProof:         {Severity: tt.SeverityError},
		},
		MaxDepth: formula.MaxDepth,
		CacheDir: ".hilbert-cache",
	}
}

// New builds an engine from the configuration file at configPath. A
// missing file means the default configuration.
func New(configPath string) (*internal.Engine, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(config)
}

// NewFromConfig builds an engine from config.
func NewFromConfig(config Config) (*internal.Engine, error) {
	axioms, err := config.AxiomRegistry()
	if err != nil {
		return nil, err
	}
	engine, err := internal.NewEngine(config.Checks, axioms)
	if err != nil {
		return nil, err
	}
	engine.SetMaxDepth(config.MaxDepth)
	return engine, nil
}

// AxiomRegistry returns the built-in axioms extended by c.Axioms.
func (c Config) AxiomRegistry() (formula.Axioms, error) {
	axioms := formula.BuiltinAxioms()
	for name, text := range c.Axioms {
		if err := axioms.Add(name, text); err != nil {
			return nil, err
		}
	}
	return axioms, nil
}

// LoadConfig reads the configuration file at path. An empty path or a
// missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	// only the keys present in the file override the defaults
	config.Checks = nil
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig stores config at path in YAML.
func WriteConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	checker Checker,
	sources [][]byte,
	processor func(Checker, []byte) ([]tt.Report, error),
) ([]tt.Report, error) {
	var all []tt.Report
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reports, err := processor(checker, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, reports...)
	}

	return all, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	checker Checker,
	paths []string,
	processor func(Checker, string) ([]tt.Report, error),
) ([]tt.Report, error) {
	var all []tt.Report
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, checker, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, reports...)
	}

	return all, nil
}

// ProcessPath checks a single file, or every formula file below a
// directory using one worker per CPU. Files that fail to read are logged
// and skipped.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	checker Checker,
	path string,
	processor func(Checker, string) ([]tt.Report, error),
) ([]tt.Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !scanner.IsFormulaFile(path) {
			return nil, nil
		}
		return processor(checker, path)
	}

	files, err := scanner.New(path, scanner.FormulaExtensions...).Paths()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	type result struct {
		reports []tt.Report
		err     error
	}
	results := make(chan result, len(files))

	// limit the number of workers
	sem := make(chan struct{}, runtime.NumCPU())

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(ProgressOutput),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	var barMu sync.Mutex

	var wg sync.WaitGroup
	started := 0
dispatch:
	for _, filename := range files {
		select {
		case <-ctx.Done():
			break dispatch
		case sem <- struct{}{}:
		}
		started++
		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			reports, err := processor(checker, fp)
			if err != nil && logger != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
			}
			results <- result{reports, err}

			barMu.Lock()
			bar.Describe(filepath.Base(fp))
			_ = bar.Add(1)
			barMu.Unlock()
		}(filename)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var reports []tt.Report
	for range started {
		if r := <-results; r.err == nil {
			reports = append(reports, r.reports...)
		}
	}
	return reports, nil
}

func ProcessFile(checker Checker, filename string) ([]tt.Report, error) {
	return checker.Run(filename)
}

func ProcessSource(checker Checker, source []byte) ([]tt.Report, error) {
	return checker.RunSource(source)
}
