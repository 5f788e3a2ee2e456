package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/hilbert/formula"
	tt "github.com/gnolang/hilbert/internal/types"
)

// createTempDir creates a temporary directory and returns its path.
// It also registers a cleanup function to remove the directory after the test.
func createTempDir(t testing.TB, prefix string) string {
	tempDir, err := os.MkdirTemp("", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	return tempDir
}

func writeFile(t testing.TB, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{CheckAxiomInstance, CheckProof, CheckRoundTrip, CheckValidate}, engine.EnabledChecks())

	engine, err = NewEngine(map[string]tt.ConfigCheck{
		CheckCNF:           {Severity: tt.SeverityInfo},
		CheckAxiomInstance: {Severity: tt.SeverityOff},
		CheckRoundTrip:     {Severity: tt.SeverityError},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{CheckCNF, CheckProof, CheckRoundTrip, CheckValidate}, engine.EnabledChecks())
	assert.Equal(t, tt.SeverityError, engine.findCheck(CheckRoundTrip).Severity())

	_, err = NewEngine(map[string]tt.ConfigCheck{"golangci-lint": {}}, nil)
	assert.ErrorContains(t, err, `unknown check "golangci-lint"`)
}

func TestEngineRun(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "engine_test")
	path := writeFile(t, dir, "sample.wff", "# sample\np → q → p\np ∧ $        # bad char\n(A → B) → (¬B → ¬A)\n\npq\n")

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	reports, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Equal(t, tt.Report{
		Check:    CheckAxiomInstance,
		Severity: tt.SeverityInfo,
		Filename: path,
		Line:     2,
		Formula:  "p → q → p",
		Message:  "instance of symmetry",
		Result:   "symmetry",
	}, reports[0])

	assert.Equal(t, CheckValidate, reports[1].Check)
	assert.Equal(t, tt.SeverityError, reports[1].Severity)
	assert.Equal(t, 3, reports[1].Line)
	assert.Equal(t, 5, reports[1].Column)
	assert.Equal(t, "p ∧ $", reports[1].Formula)

	assert.Equal(t, 4, reports[2].Line)
	assert.Equal(t, "contraposition", reports[2].Result)

	assert.Equal(t, CheckValidate, reports[3].Check)
	assert.Equal(t, 6, reports[3].Line)
	assert.Equal(t, 0, reports[3].Column)

	_, err = engine.Run(filepath.Join(dir, "missing.wff"))
	assert.Error(t, err)
}

func TestEngineRunSource(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigCheck{
		CheckCNF:           {Severity: tt.SeverityInfo},
		CheckAxiomInstance: {Severity: tt.SeverityOff},
	}, nil)
	require.NoError(t, err)

	reports, err := engine.RunSource([]byte("p → q\n¬(p ∨ q)\n"))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, sourceName, reports[0].Filename)
	assert.Equal(t, "¬p∨q", reports[0].Result)
	assert.Equal(t, "¬p∧¬q", reports[1].Result)
}

func TestEngineIgnore(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "engine_ignore")
	bad := writeFile(t, dir, "bad.wff", "p ∧\n")

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	engine.IgnoreCheck(CheckValidate)
	assert.NotContains(t, engine.EnabledChecks(), CheckValidate)
	reports, err := engine.Run(bad)
	require.NoError(t, err)
	assert.Empty(t, reports)

	engine, err = NewEngine(nil, nil)
	require.NoError(t, err)
	engine.IgnorePath(dir)
	reports, err = engine.Run(bad)
	require.NoError(t, err)
	assert.Empty(t, reports)

	engine, err = NewEngine(nil, nil)
	require.NoError(t, err)
	engine.IgnorePath("*.wff")
	assert.True(t, engine.isIgnoredPath(bad))
	assert.False(t, engine.isIgnoredPath(filepath.Join(dir, "ok.prop")))
}

func TestEngineCustomAxioms(t *testing.T) {
	t.Parallel()

	axioms := formula.BuiltinAxioms()
	require.NoError(t, axioms.Add("peirce", "((A → B) → A) → A"))
	engine, err := NewEngine(nil, axioms)
	require.NoError(t, err)

	reports, err := engine.RunSource([]byte("((p → q) → p) → p"))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "peirce", reports[0].Result)
}

func TestEngineMaxDepth(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	engine.SetMaxDepth(2)

	reports, err := engine.RunSource([]byte("(((p)))"))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, CheckValidate, reports[0].Check)
	assert.Contains(t, reports[0].Message, "maximum depth")
}

func TestEngineProofs(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "engine_proof")
	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, dir, "valid.proof", "p : hyp\np → q → p : axiom symmetry\n\nq → p : mp 0 1\n")
		reports, err := engine.Run(path)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, CheckProof, reports[0].Check)
		assert.Equal(t, tt.SeverityInfo, reports[0].Severity)
		assert.Equal(t, 4, reports[0].Line)
		assert.Equal(t, "q→p", reports[0].Result)
	})

	t.Run("wrong conclusion", func(t *testing.T) {
		path := writeFile(t, dir, "wrong.proof", "p : hyp\np → q → p : axiom symmetry\nq : mp 0 1\n")
		reports, err := engine.Run(path)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, tt.SeverityError, reports[0].Severity)
		assert.Equal(t, 3, reports[0].Line)
		assert.Contains(t, reports[0].Message, "line 2")
	})

	t.Run("unreadable step", func(t *testing.T) {
		reports, err := engine.RunProofSource([]byte("p : hyp\np : maybe\n"))
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, CheckValidate, reports[0].Check)
		assert.Equal(t, 2, reports[0].Line)
	})
}

func TestCacheWithEngine(t *testing.T) {
	t.Parallel()

	tmpDir := createTempDir(t, "cache-engine-test")
	cache, err := NewCache(filepath.Join(tmpDir, "cache"))
	require.NoError(t, err)

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	engine.SetCache(cache)

	filename := writeFile(t, tmpDir, "test.wff", "p → q → p\n")
	reports, err := engine.Run(filename)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, cache.Len())

	cached, err := engine.Run(filename)
	require.NoError(t, err)
	assert.Equal(t, reports, cached)

	writeFile(t, tmpDir, "test.wff", "p ∧\n")
	fresh, err := engine.Run(filename)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, CheckValidate, fresh[0].Check)

	engine.IgnoreCheck(CheckValidate)
	fresh, err = engine.Run(filename)
	require.NoError(t, err)
	assert.Empty(t, fresh, "changed setup must not reuse cached reports")
}

func TestEngineNocheckDirectives(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)

	reports, err := engine.RunSource([]byte("p → q → p   #nocheck:axiom-instance\n#nocheck\np ∧\npq\n"))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, CheckValidate, reports[0].Check)
	assert.Equal(t, 4, reports[0].Line)
}
