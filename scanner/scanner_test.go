package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectScanner(t *testing.T) {
	tempDir := t.TempDir()

	files := map[string]string{
		"axioms.wff":         "p→(q→p)",
		"lemma.prop":         "p∨¬p",
		"id.proof":           "p : hyp",
		"notes.txt":          "not a formula file",
		"sub/more.wff":       "¬¬p",
		".hidden/secret.wff": "p",
	}

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	scanned, err := New(tempDir, FormulaExtensions...).Scan()
	require.NoError(t, err)
	assert.Len(t, scanned, 4, "should find the four formula files outside hidden dirs")

	found := make(map[string]bool)
	for _, file := range scanned {
		found[file.Path] = true
		assert.Greater(t, file.Size, int64(0))
	}
	assert.True(t, found[filepath.Join(tempDir, "axioms.wff")])
	assert.True(t, found[filepath.Join(tempDir, "lemma.prop")])
	assert.True(t, found[filepath.Join(tempDir, "id.proof")])
	assert.True(t, found[filepath.Join(tempDir, "sub", "more.wff")])
	assert.False(t, found[filepath.Join(tempDir, "notes.txt")])
	assert.False(t, found[filepath.Join(tempDir, ".hidden", "secret.wff")])

	paths, err := New(tempDir, ".wff").Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tempDir, "axioms.wff"),
		filepath.Join(tempDir, "sub", "more.wff"),
	}, paths)

	all, err := New(tempDir).Paths()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestScanMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), ".wff").Scan()
	assert.Error(t, err)
}

func TestFileKinds(t *testing.T) {
	assert.True(t, IsFormulaFile("a/b.wff"))
	assert.True(t, IsFormulaFile("b.proof"))
	assert.False(t, IsFormulaFile("b.go"))
	assert.True(t, IsProofFile("x.proof"))
	assert.False(t, IsProofFile("x.prop"))
}
