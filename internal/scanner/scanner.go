// Package scanner enumerates documents under a target directory.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrRootNotFound reports that the scan root is missing or not a
// directory. Callers treat it as a setup failure, distinct from I/O
// errors hit mid-scan.
var ErrRootNotFound = errors.New("target directory not found")

// Scanner walks a root directory and returns relative, slash-separated
// file paths. Directory enumeration order is not meaningful; results are
// sorted so callers get deterministic batches.
type Scanner struct {
	root string
}

// New creates a Scanner rooted at the given directory.
func New(root string) *Scanner {
	return &Scanner{root: root}
}

// Root returns the scanner's root directory.
func (s *Scanner) Root() string { return s.root }

// Files returns every regular file under the root. A missing root is an
// error; callers decide whether that is fatal.
func (s *Scanner) Files() ([]string, error) {
	if info, err := os.Stat(s.root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", s.root, ErrRootNotFound)
	}

	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.root, err)
	}
	return files, nil
}

// FilesFiltered returns files matching the filter options.
func (s *Scanner) FilesFiltered(opts FilterOptions) ([]string, error) {
	all, err := s.Files()
	if err != nil {
		return nil, err
	}
	return FilterFiles(all, opts), nil
}

// MarkdownFiles returns the .md files eligible for processing, with the
// default policy exclusions applied.
func (s *Scanner) MarkdownFiles() ([]string, error) {
	return s.FilesFiltered(FilterOptions{
		ExcludeDirs:       DefaultExcludeDirs(),
		IncludeExtensions: []string{".md"},
	})
}
