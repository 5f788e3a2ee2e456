package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/gnolang/hilbert/formula"
	"github.com/gnolang/hilbert/internal/nocheck"
	tt "github.com/gnolang/hilbert/internal/types"
	"github.com/gnolang/hilbert/scanner"
)

// sourceName labels reports for input that did not come from a file.
const sourceName = "<source>"

// Engine runs the enabled checks over formula files.
type Engine struct {
	checks       map[string]Check
	ignoredPaths []string
	axioms       formula.Axioms
	maxDepth     int
	cache        *Cache
	logger       *zap.Logger

	mu            sync.RWMutex
	ignoredChecks map[string]bool
}

// NewEngine creates an engine with the default checks, adjusted by the
// severities in checks. A nil axioms registry means the built-in axioms.
func NewEngine(checks map[string]tt.ConfigCheck, axioms formula.Axioms) (*Engine, error) {
	if axioms == nil {
		axioms = formula.BuiltinAxioms()
	}
	engine := &Engine{
		axioms:        axioms,
		maxDepth:      formula.MaxDepth,
		ignoredChecks: make(map[string]bool),
	}
	if err := engine.applyChecks(checks); err != nil {
		return nil, err
	}
	return engine, nil
}

func (e *Engine) applyChecks(checks map[string]tt.ConfigCheck) error {
	e.checks = make(map[string]Check)
	e.registerDefaultChecks()

	for key, cfg := range checks {
		c := e.findCheck(key)
		if c == nil {
			newCheck, ok := allCheckConstructors[key]
			if !ok {
				return fmt.Errorf("unknown check %q", key)
			}
			c = newCheck(e.axioms)
			e.checks[key] = c
		}
		c.SetSeverity(cfg.Severity)
		if cfg.Severity == tt.SeverityOff {
			delete(e.checks, key)
		}
	}
	return nil
}

func (e *Engine) registerDefaultChecks() {
	for key, newCheck := range allCheckConstructors {
		c := newCheck(e.axioms)
		if c.Severity() != tt.SeverityOff {
			e.checks[key] = c
		}
	}
}

func (e *Engine) findCheck(name string) Check {
	if c, ok := e.checks[name]; ok {
		return c
	}
	return nil
}

// EnabledChecks returns the names of the checks that will run, sorted.
func (e *Engine) EnabledChecks() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.checks))
	for name := range e.checks {
		if !e.ignoredChecks[name] {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// SetMaxDepth bounds parser nesting for every line.
func (e *Engine) SetMaxDepth(depth int) {
	if depth > 0 {
		e.maxDepth = depth
	}
}

// SetCache makes Run reuse results for unchanged files.
func (e *Engine) SetCache(c *Cache) { e.cache = c }

// SetLogger sets the logger used for cache and watch diagnostics.
func (e *Engine) SetLogger(l *zap.Logger) { e.logger = l }

// IgnoreCheck disables a check for subsequent runs.
func (e *Engine) IgnoreCheck(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignoredChecks[name] = true
}

// IgnorePath skips files matching the glob pattern or lying below the
// directory path.
func (e *Engine) IgnorePath(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnoredPath(path string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	path = filepath.Clean(path)
	for _, pattern := range e.ignoredPaths {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
		if path == pattern || strings.HasPrefix(path, pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run checks the formula file at filename and returns its reports sorted by
// line.
func (e *Engine) Run(filename string) ([]tt.Report, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	key := e.cacheKey(filename)
	if e.cache != nil {
		if reports, ok := e.cache.Get(filename, key); ok {
			return reports, nil
		}
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	reports := e.run(filename, content, scanner.IsProofFile(filename))

	if e.cache != nil {
		if err := e.cache.Set(filename, key, reports); err != nil && e.logger != nil {
			e.logger.Warn("Failed to cache reports", zap.String("file", filename), zap.Error(err))
		}
	}
	return reports, nil
}

// RunSource checks formulas given directly, one per line.
func (e *Engine) RunSource(source []byte) ([]tt.Report, error) {
	return e.run(sourceName, source, false), nil
}

// RunProofSource checks source as the lines of a proof.
func (e *Engine) RunProofSource(source []byte) ([]tt.Report, error) {
	return e.run(sourceName, source, true), nil
}

func (e *Engine) run(filename string, content []byte, proof bool) []tt.Report {
	entries := e.readEntries(filename, content, proof)
	checks := e.activeChecks()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		all []tt.Report
	)
	for _, c := range checks {
		wg.Add(1)
		go func(c Check) {
			defer wg.Done()

			var reports []tt.Report
			pc, isProofCheck := c.(*ProofCheck)
			switch {
			case isProofCheck:
				if proof {
					reports = pc.CheckProof(entries)
				}
			case proof && c.Name() != CheckValidate:
				// only validation applies line by line to proofs
			default:
				for _, entry := range entries {
					reports = append(reports, c.Run(entry)...)
				}
			}

			mu.Lock()
			all = append(all, reports...)
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	all = silence(all, nocheck.Parse(content))
	SortReports(all)
	return all
}

// silence drops the reports a #nocheck directive covers.
func silence(reports []tt.Report, directives *nocheck.Manager) []tt.Report {
	kept := reports[:0]
	for _, r := range reports {
		if !directives.IsIgnored(r.Line, r.Check) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (e *Engine) activeChecks() []Check {
	e.mu.RLock()
	defer e.mu.RUnlock()

	checks := make([]Check, 0, len(e.checks))
	for name, c := range e.checks {
		if !e.ignoredChecks[name] {
			checks = append(checks, c)
		}
	}
	return checks
}

// readEntries splits content into formula lines. Blank lines and text after
// '#' are ignored.
func (e *Engine) readEntries(filename string, content []byte, proof bool) []Entry {
	var entries []Entry
	for i, line := range strings.Split(string(content), "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		entry := Entry{Filename: filename, Line: i + 1, Text: text}
		if proof {
			step, err := formula.ParseStep(text)
			if err != nil {
				entry.Err = err
			} else {
				entry.Step = &step
				entry.Formula = step.Formula
			}
		} else {
			entry.Formula, entry.Err = formula.ParseLimit(text, e.maxDepth)
		}
		entries = append(entries, entry)
	}
	return entries
}

// cacheKey identifies the engine setup that produced a cached result.
func (e *Engine) cacheKey(filename string) string {
	var sb strings.Builder
	sb.WriteString(filename)
	for _, name := range e.EnabledChecks() {
		fmt.Fprintf(&sb, "|%s=%s", name, e.checks[name].Severity())
	}
	fmt.Fprintf(&sb, "|depth=%d", e.maxDepth)
	for _, name := range e.axioms.Names() {
		fmt.Fprintf(&sb, "|%s:%s", name, e.axioms[name].Key())
	}
	return sb.String()
}

// SortReports orders reports by position, breaking ties by check name.
func SortReports(reports []tt.Report) {
	slices.SortStableFunc(reports, func(a, b tt.Report) int {
		if c := strings.Compare(a.Filename, b.Filename); c != 0 {
			return c
		}
		if a.Line != b.Line {
			return a.Line - b.Line
		}
		return strings.Compare(a.Check, b.Check)
	})
}
