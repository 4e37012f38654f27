package scanner

import (
	"sort"
	"strings"
)

// FilterOptions defines criteria for including or excluding files.
type FilterOptions struct {
	// ExcludeDirs is a list of directory names to exclude.
	// Matching is segment-aware: "archive" excludes "archive/old.md" and
	// "guides/archive/old.md", but not "archived/old.md".
	ExcludeDirs []string

	// IncludeExtensions is a list of extensions to include (e.g. ".md").
	// If empty, all extensions are included.
	IncludeExtensions []string
}

// DefaultExcludeDirs returns the directories excluded from processing by
// policy. Archived and backed-up documents are intentionally dead zones.
func DefaultExcludeDirs() []string {
	return []string{
		"archive",
		"backup",
		".git",
	}
}

// FilterFiles applies the filter options to a list of file paths.
// It returns a new slice, sorted deterministically.
func FilterFiles(paths []string, opts FilterOptions) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if shouldExclude(path, opts.ExcludeDirs) {
			continue
		}
		if !shouldIncludeExtension(path, opts.IncludeExtensions) {
			continue
		}
		filtered = append(filtered, path)
	}

	sort.Strings(filtered)
	return filtered
}

// shouldExclude returns true if the path contains any excluded segment.
func shouldExclude(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		for _, exclude := range excludes {
			if part == exclude {
				return true
			}
		}
	}
	return false
}

func shouldIncludeExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
