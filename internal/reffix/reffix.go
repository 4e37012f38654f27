// Package reffix applies the configured cross-reference repairs: known
// anchor-less links replaced by their anchored forms.
package reffix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prismworks-ai/docsteward/internal/config"
	"github.com/prismworks-ai/docsteward/internal/render"
)

// Apply runs the replacement table against files under root. Files that
// do not exist, or no longer contain the old reference, are skipped; a
// fix that was already applied stays applied on the next run.
func Apply(root string, fixes []config.RefFix, out io.Writer) (int, error) {
	applied := 0
	for _, fix := range fixes {
		full := filepath.Join(root, filepath.FromSlash(fix.File))

		data, err := os.ReadFile(full)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			fmt.Fprintf(out, "ERROR: %s: %v\n", fix.File, err)
			continue
		}

		content := string(data)
		if !strings.Contains(content, fix.Old) {
			continue
		}

		content = strings.ReplaceAll(content, fix.Old, fix.New)
		if err := render.AtomicWrite(full, []byte(content)); err != nil {
			fmt.Fprintf(out, "ERROR: %s: %v\n", fix.File, err)
			continue
		}

		fmt.Fprintf(out, "FIXED: %s (%s -> %s)\n", fix.File, fix.Old, fix.New)
		applied++
	}
	return applied, nil
}
