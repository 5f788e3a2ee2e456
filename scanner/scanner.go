package scanner

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// FormulaExtensions are the file extensions holding formulas, one per line.
// Files ending in ProofExtension hold proof steps instead.
var FormulaExtensions = []string{".wff", ".prop", ProofExtension}

// ProofExtension marks files checked as a single proof.
const ProofExtension = ".proof"

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
}

// New returns a scanner for rootDir. Without extensions every regular file
// matches.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the root directory and returns the matching files sorted by
// path. Hidden directories are skipped.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.rootDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !s.isTargetFile(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, FileInfo{Path: path, Size: info.Size()})
		return nil
	})

	slices.SortFunc(files, func(a, b FileInfo) int { return strings.Compare(a.Path, b.Path) })
	return files, err
}

// Paths is Scan reduced to the file paths.
func (s *Scanner) Paths() ([]string, error) {
	files, err := s.Scan()
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	return slices.Contains(s.extensions, filepath.Ext(path))
}

// IsFormulaFile reports whether path has one of the FormulaExtensions.
func IsFormulaFile(path string) bool {
	return slices.Contains(FormulaExtensions, filepath.Ext(path))
}

// IsProofFile reports whether path holds a proof.
func IsProofFile(path string) bool {
	return filepath.Ext(path) == ProofExtension
}
