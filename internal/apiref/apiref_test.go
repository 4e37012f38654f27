package apiref

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prismworks-ai/docsteward/internal/config"
)

func testGenerator() *Generator {
	return &Generator{
		Source: config.APIRef{
			SourceDir:   "src",
			ModuleFiles: []string{"lib.rs", "mod.rs"},
			DocPrefix:   "//!",
			CoreModules: []string{"client", "server", "transport"},
			DocsBaseURL: "https://docs.rs/mcp-protocol-sdk",
			OutputFile:  "api-reference.md",
		},
		Title:      "MCP Protocol SDK",
		Provenance: "Rust source code",
		DocsDir:    "docs",
		Now: func() time.Time {
			return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
		},
	}
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExtractModuleDocs(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/lib.rs", "//! Crate-level overview.\n\npub mod client;\n")
	writeSource(t, root, "src/client/mod.rs", "//! Client implementation.\n//! Supports retries.\nuse std::io;\n")
	writeSource(t, root, "src/server/mod.rs", "// plain comment, not a doc\nfn main() {}\n")
	writeSource(t, root, "src/transport/http.rs", "//! Not a module file\n")

	g := testGenerator()
	modules, err := g.ExtractModuleDocs(root)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"root":   "Crate-level overview.",
		"client": "Client implementation.\nSupports retries.",
	}, modules)
}

func TestExtractModuleDocsMissingSourceDir(t *testing.T) {
	g := testGenerator()
	_, err := g.ExtractModuleDocs(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "src/client/mod.rs", "//! Client implementation with connection pooling.\n")
	writeSource(t, root, "src/transport/mod.rs", "//! Transport layer.\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))

	g := testGenerator()
	out, err := g.Generate(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs", "api-reference.md"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	page := string(data)

	assert.True(t, strings.HasPrefix(page, "# API Reference\n"))
	assert.Contains(t, page, "Auto-generated from Rust source code")
	assert.Contains(t, page, "Last updated: 2025-06-15")
	assert.Contains(t, page, "| Module | Documentation |")

	// Modules render in configured order; server has no docs and is skipped.
	clientAt := strings.Index(page, "### [client]")
	transportAt := strings.Index(page, "### [transport]")
	assert.Greater(t, clientAt, 0)
	assert.Greater(t, transportAt, clientAt)
	assert.NotContains(t, page, "### [server]")

	assert.Contains(t, page,
		"[View full documentation →](https://docs.rs/mcp-protocol-sdk/latest/mcp_protocol_sdk/client/index.html)")
}

func TestModuleURL(t *testing.T) {
	g := testGenerator()
	assert.Equal(t,
		"https://docs.rs/mcp-protocol-sdk/latest/mcp_protocol_sdk/transport/index.html",
		g.moduleURL("transport"))
}

func TestSummarize(t *testing.T) {
	short := "brief module doc"
	assert.Equal(t, short, summarize(short))

	long := strings.Repeat("x", summaryLen+50)
	got := summarize(long)
	assert.Len(t, got, summaryLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}
