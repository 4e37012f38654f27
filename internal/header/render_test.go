package header

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer() *Renderer {
	return &Renderer{
		RepoURL:         "https://github.com/prismworks-ai/mcp-protocol-sdk",
		ContributingURL: "https://github.com/prismworks-ai/mcp-protocol-sdk/blob/main/CONTRIBUTING.md",
		Banner: Banner{
			Title:           "MCP Protocol SDK",
			Description:     "The de facto industry standard for developing MCP clients and servers in Rust",
			Tagline:         "Production-ready • 65%+ test coverage • Full protocol compliance • production-ready error handling",
			GeneratedSource: "Rust source code",
			GeneratedBy:     "scripts/generate-docs.sh",
		},
		Now: func() time.Time {
			return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
		},
	}
}

func TestRenderManual(t *testing.T) {
	r := testRenderer()
	out := r.Render("docs/error-handling.md", true, "d41d8cd98f00b204e9800998ecf8427e")

	assert.True(t, strings.HasPrefix(out, "<!-- \n"), "header starts with an HTML comment")
	assert.Contains(t, out, "## DOCUMENTATION METADATA")
	assert.Contains(t, out, "Type: User Guide (Manually Written)")
	assert.Contains(t, out, "Path: docs/error-handling.md")
	assert.Contains(t, out, "Last Updated: 2025-06-15 10:30:00 UTC")
	assert.Contains(t, out, "Hash: d41d8cd9", "hash is truncated to 8 characters")
	assert.NotContains(t, out, "d41d8cd98f", "full hash never appears in the header")
	assert.Contains(t, out, "Repository: https://github.com/prismworks-ai/mcp-protocol-sdk")

	assert.Contains(t, out, "2-Click Report →")
	assert.Contains(t, out, "Become a Contributor")
	assert.Contains(t, out, r.ContributingURL)

	assert.Contains(t, out, "**# MCP Protocol SDK** - The de facto industry standard")
	assert.True(t, strings.HasSuffix(out, "---\n\n"), "header ends with a separator and blank line")
	assert.Equal(t, 2, strings.Count(out, "\n---\n"), "banner sits between two separators")
}

func TestRenderGenerated(t *testing.T) {
	r := testRenderer()
	out := r.Render("docs/api-reference.md", false, "aabbccddeeff00112233445566778899")

	assert.Contains(t, out, "🤖 AUTO-GENERATED DOCUMENTATION")
	assert.Contains(t, out, "Type: API Reference (Auto-Generated)")
	assert.Contains(t, out, "Source: Rust source code")
	assert.Contains(t, out, "Generator: scripts/generate-docs.sh")
	assert.Contains(t, out, "Hash: aabbccdd")

	assert.Contains(t, out, "2-Click Report →")
	assert.NotContains(t, out, "Become a Contributor", "contributor badge is manual-only")
}

func TestRenderDeterministic(t *testing.T) {
	r := testRenderer()
	first := r.Render("docs/transports.md", true, "0123456789abcdef0123456789abcdef")
	second := r.Render("docs/transports.md", true, "0123456789abcdef0123456789abcdef")
	assert.Equal(t, first, second)
}

func TestRenderStripRoundTrip(t *testing.T) {
	// A freshly rendered header must be recognized as current, and the
	// body must sit immediately after it.
	r := testRenderer()
	body := "# Errors\n\nSome body text.\n"
	doc := r.Render("docs/error-handling.md", true, "d41d8cd98f00b204e9800998ecf8427e") + body

	require.Equal(t, V3, Detect(doc))
	assert.True(t, strings.HasSuffix(doc, "\n\n"+body))
}
