// Package quality runs read-only checks over the documentation corpus:
// duplicated phrasing, API-shaped content outside the generated reference,
// and cross-references missing section anchors.
package quality

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prismworks-ai/docsteward/internal/config"
	"github.com/prismworks-ai/docsteward/internal/scanner"
)

// Document is one loaded markdown file.
type Document struct {
	Path    string // relative to the docs root
	Content string
}

// Corpus holds every eligible document, loaded once and shared by all
// checks. Checks never write; the corpus is their whole world.
type Corpus struct {
	Docs []Document
}

// LoadCorpus reads all eligible markdown files under the scanner's root.
func LoadCorpus(sc *scanner.Scanner) (*Corpus, error) {
	files, err := sc.MarkdownFiles()
	if err != nil {
		return nil, err
	}

	c := &Corpus{}
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(sc.Root(), filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		c.Docs = append(c.Docs, Document{Path: rel, Content: string(data)})
	}
	return c, nil
}

// Check inspects the corpus and reports human-readable issues.
type Check interface {
	// ID returns the check identifier (e.g. "docs:duplicates").
	ID() string

	// Run returns one line per issue found; empty means clean.
	Run(c *Corpus) []string
}

// NewRegistry builds the ordered check list from configuration.
func NewRegistry(q config.Quality, generatedDocs []string) ([]Check, error) {
	apidocs, err := NewAPIDocs(q.APIPatterns, generatedDocs)
	if err != nil {
		return nil, err
	}
	return []Check{
		NewDuplicates(q.DuplicatePhrases),
		apidocs,
		NewCrossRefs(q.AnchorKeywords),
	}, nil
}
