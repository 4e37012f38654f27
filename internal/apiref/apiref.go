// Package apiref synthesizes the generated API reference page from
// module-level doc comments in the SDK source tree.
package apiref

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prismworks-ai/docsteward/internal/config"
	"github.com/prismworks-ai/docsteward/internal/render"
)

// summaryLen bounds how much of a module doc appears inline; the full
// text lives behind the documentation link.
const summaryLen = 200

// Generator scrapes module doc comments and renders the reference page.
type Generator struct {
	Source config.APIRef
	// Title and Provenance feed the intro and banner lines
	// (e.g. "MCP Protocol SDK", "Rust source code").
	Title      string
	Provenance string
	DocsDir    string

	// Now is the timestamp source; tests pin it. Nil means time.Now.
	Now func() time.Time
}

// ExtractModuleDocs walks the source tree and returns module name → doc
// text for every module file carrying doc-comment lines. The first
// configured module file name is the crate root and maps to "root";
// other module files take their parent directory's name.
func (g *Generator) ExtractModuleDocs(root string) (map[string]string, error) {
	srcDir := filepath.Join(root, g.Source.SourceDir)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source directory %s not found", srcDir)
	}

	modules := map[string]string{}
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !g.isModuleFile(d.Name()) {
			return nil
		}

		doc, err := readDocComment(path, g.Source.DocPrefix)
		if err != nil {
			return err
		}
		if doc == "" {
			return nil
		}

		modules[g.moduleName(path, d.Name())] = doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}
	return modules, nil
}

// Generate writes the reference page under the docs directory and
// returns its path.
func (g *Generator) Generate(root string) (string, error) {
	modules, err := g.ExtractModuleDocs(root)
	if err != nil {
		return "", err
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	date := now().UTC().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(render.Heading(1, "API Reference"))
	b.WriteString(fmt.Sprintf("> **Auto-generated from %s**  \n> Last updated: %s\n\n", g.Provenance, date))

	b.WriteString(fmt.Sprintf(
		"This is the complete API reference for the %s. For detailed type signatures and examples, see the [full API documentation](%s).\n\n",
		g.Title, g.Source.DocsBaseURL))

	b.WriteString(render.Heading(2, "Modules"))

	var rows [][]string
	for _, module := range g.Source.CoreModules {
		if _, ok := modules[module]; ok {
			rows = append(rows, []string{module, fmt.Sprintf("[%s](%s)", module, g.moduleURL(module))})
		}
	}
	b.WriteString(render.Table([]string{"Module", "Documentation"}, rows))
	b.WriteString("\n")

	for _, module := range g.Source.CoreModules {
		doc, ok := modules[module]
		if !ok {
			continue
		}
		b.WriteString(render.Heading(3, fmt.Sprintf("[%s](%s)", module, g.moduleURL(module))))
		b.WriteString(summarize(doc) + "\n\n")
		b.WriteString(fmt.Sprintf("[View full documentation →](%s)\n\n", g.moduleURL(module)))
	}

	out := filepath.Join(root, g.DocsDir, g.Source.OutputFile)
	if err := render.AtomicWrite(out, []byte(b.String())); err != nil {
		return "", err
	}
	return out, nil
}

func (g *Generator) isModuleFile(name string) bool {
	for _, mf := range g.Source.ModuleFiles {
		if name == mf {
			return true
		}
	}
	return false
}

func (g *Generator) moduleName(path, base string) string {
	if len(g.Source.ModuleFiles) > 0 && base == g.Source.ModuleFiles[0] {
		return "root"
	}
	return filepath.Base(filepath.Dir(path))
}

// moduleURL builds the hosted-docs link, e.g.
// https://docs.rs/mcp-protocol-sdk/latest/mcp_protocol_sdk/client/index.html.
func (g *Generator) moduleURL(module string) string {
	base := strings.TrimSuffix(g.Source.DocsBaseURL, "/")
	crate := strings.ReplaceAll(filepath.Base(base), "-", "_")
	return fmt.Sprintf("%s/latest/%s/%s/index.html", base, crate, module)
}

func readDocComment(path, prefix string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if rest, ok := strings.CutPrefix(line, prefix+" "); ok {
			lines = append(lines, rest)
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func summarize(doc string) string {
	runes := []rune(doc)
	if len(runes) <= summaryLen {
		return doc
	}
	return string(runes[:summaryLen]) + "..."
}
