// Package migrate brings every document in a target directory to the
// current header generation, exactly once, without touching body content.
package migrate

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/prismworks-ai/docsteward/internal/classify"
	"github.com/prismworks-ai/docsteward/internal/header"
	"github.com/prismworks-ai/docsteward/internal/ledger"
	"github.com/prismworks-ai/docsteward/internal/render"
	"github.com/prismworks-ai/docsteward/internal/scanner"
)

// Outcome is the per-document migration result.
type Outcome string

const (
	Migrated       Outcome = "migrated"
	AlreadyCurrent Outcome = "already-current"
	IoError        Outcome = "io-error"
)

// Result records what happened to one document.
type Result struct {
	Path    string
	Outcome Outcome
	// Found is the header generation detected before migration.
	Found header.Version
	Err   error
}

// Summary accumulates batch counts for the final report.
type Summary struct {
	Migrated       int
	AlreadyCurrent int
	Errors         int
	Results        []Result
}

// Migrator rewrites document headers and maintains the processing ledger.
type Migrator struct {
	scanner    *scanner.Scanner
	classifier *classify.Classifier
	renderer   *header.Renderer
	ledger     *ledger.Ledger

	// prefix is the docs directory as configured; it prefixes the paths
	// recorded in headers and the ledger (e.g. "docs/error-handling.md").
	prefix string

	out io.Writer
	now func() time.Time
}

// New builds a Migrator. out receives per-document progress lines. Ledger
// timestamps share the renderer's clock so a run is internally consistent.
func New(sc *scanner.Scanner, cl *classify.Classifier, r *header.Renderer, led *ledger.Ledger, prefix string, out io.Writer) *Migrator {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return &Migrator{
		scanner:    sc,
		classifier: cl,
		renderer:   r,
		ledger:     led,
		prefix:     prefix,
		out:        out,
		now:        now,
	}
}

// Migrate processes a single document, given by its path relative to the
// docs directory. I/O failures are reported in the Result, never raised,
// so one bad document cannot abort a batch.
func (m *Migrator) Migrate(rel string) Result {
	docPath := m.docPath(rel)
	full := filepath.Join(m.scanner.Root(), filepath.FromSlash(rel))

	data, err := os.ReadFile(full)
	if err != nil {
		return Result{Path: docPath, Outcome: IoError, Err: err}
	}
	content := string(data)

	found := header.Detect(content)
	if found == header.Current {
		return Result{Path: docPath, Outcome: AlreadyCurrent, Found: found}
	}

	body := content
	if found != header.None {
		stripped, ok := header.Strip(content, found)
		if ok {
			body = stripped
		} else {
			// Partial or hand-edited header: never guess at a boundary.
			// A fresh header goes on top of the content as-is.
			found = header.None
		}
	}
	body = strings.TrimLeft(body, "\n")

	sum := md5.Sum([]byte(body))
	hash := hex.EncodeToString(sum[:])

	class := m.classifier.Classify(path.Base(rel))
	head := m.renderer.Render(docPath, class == classify.Manual, hash)

	if err := render.AtomicWrite(full, []byte(head+body)); err != nil {
		return Result{Path: docPath, Outcome: IoError, Found: found, Err: err}
	}

	m.ledger.Put(docPath, ledger.Entry{
		Type:          string(class),
		Hash:          hash,
		LastUpdated:   m.now().UTC(),
		HeaderVersion: int(header.Current),
	})

	return Result{Path: docPath, Outcome: Migrated, Found: found}
}

// Run migrates every eligible document under the docs directory and
// persists the ledger after each successful update. It fails outright
// only when the target directory itself is unusable.
func (m *Migrator) Run() (Summary, error) {
	files, err := m.scanner.MarkdownFiles()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, rel := range files {
		res := m.Migrate(rel)
		sum.Results = append(sum.Results, res)

		switch res.Outcome {
		case Migrated:
			sum.Migrated++
			fmt.Fprintf(m.out, "MIGRATED: %s (was %s)\n", res.Path, res.Found)
			if err := m.ledger.Save(); err != nil {
				return sum, fmt.Errorf("saving ledger: %w", err)
			}
		case AlreadyCurrent:
			sum.AlreadyCurrent++
			fmt.Fprintf(m.out, "SKIP: %s (already current)\n", res.Path)
		case IoError:
			sum.Errors++
			fmt.Fprintf(m.out, "ERROR: %s: %v\n", res.Path, res.Err)
		}
	}

	fmt.Fprintf(m.out, "\nMigrated %d, already current %d, errors %d (of %d documents)\n",
		sum.Migrated, sum.AlreadyCurrent, sum.Errors, len(files))

	return sum, nil
}

func (m *Migrator) docPath(rel string) string {
	if m.prefix == "" {
		return rel
	}
	return path.Join(filepath.ToSlash(m.prefix), rel)
}
