package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prismworks-ai/docsteward/cmd/docsteward/internal/clierr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func seedRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "getting-started.md"),
		[]byte("# Getting Started\n\nInstall the SDK.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "api-reference.md"),
		[]byte("# API Reference\n\nGenerated content.\n"), 0o644))
	return root
}

func TestHeadersApplyEndToEnd(t *testing.T) {
	root := seedRepo(t)

	out, err := run(t, "headers", "apply", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "MIGRATED: docs/getting-started.md (was none)")
	assert.Contains(t, out, "MIGRATED: docs/api-reference.md (was none)")
	assert.Contains(t, out, "Migrated 2, already current 0, errors 0 (of 2 documents)")

	data, err := os.ReadFile(filepath.Join(root, "docs", "getting-started.md"))
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "<!-- \n"))
	assert.Contains(t, content, "## DOCUMENTATION METADATA")
	assert.Contains(t, content, "Install the SDK.")

	data, err = os.ReadFile(filepath.Join(root, "docs", "api-reference.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "AUTO-GENERATED DOCUMENTATION")

	_, err = os.Stat(filepath.Join(root, ".local", "docs-metadata.json"))
	assert.NoError(t, err, "ledger is written")

	// Second run is a no-op.
	out, err = run(t, "headers", "apply", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated 0, already current 2, errors 0 (of 2 documents)")
}

func TestHeadersApplyMissingDocsDir(t *testing.T) {
	_, err := run(t, "headers", "apply", "--root", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, clierr.CodeConfig, clierr.ExitCodeOf(err))
}

func TestHeadersStatus(t *testing.T) {
	root := seedRepo(t)

	out, err := run(t, "headers", "status", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Ledger is empty")

	_, err = run(t, "headers", "apply", "--root", root)
	require.NoError(t, err)

	out, err = run(t, "headers", "status", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "docs/getting-started.md")
	assert.Contains(t, out, "manual")
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "2 documents recorded")
}

func TestCheckReportsIssues(t *testing.T) {
	root := seedRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "transports.md"),
		[]byte("# Transports\n\npub struct HttpTransport provides exponential backoff.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "retries.md"),
		[]byte("# Retries\n\nUses exponential backoff.\n"), 0o644))

	out, err := run(t, "check", "--root", root)
	require.Error(t, err)
	assert.Equal(t, clierr.CodeFailure, clierr.ExitCodeOf(err))
	assert.Contains(t, out, "FAIL: docs:duplicates")
	assert.Contains(t, out, "FAIL: docs:api-content")
}

func TestCheckPassesCleanCorpus(t *testing.T) {
	root := seedRepo(t)

	out, err := run(t, "check", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS: docs:duplicates")
	assert.Contains(t, out, "Documentation quality check passed.")
}

func TestFixAppliesConfiguredReferences(t *testing.T) {
	root := seedRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "getting-started.md"),
		[]byte("See [Transports](./transports.md) next.\n"), 0o644))

	out, err := run(t, "fix", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "FIXED: docs/getting-started.md")

	data, err := os.ReadFile(filepath.Join(root, "docs", "getting-started.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "./transports.md#quick-selection-guide")
}

func TestRestructureArchivesConfiguredFiles(t *testing.T) {
	root := seedRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "SDK_FEATURES.md"),
		[]byte("# Features\n"), 0o644))

	out, err := run(t, "restructure", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "ARCHIVED: docs/SDK_FEATURES.md")

	_, err = os.Stat(filepath.Join(root, "docs", "archive", "SDK_FEATURES.md"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "docs-backup", "SDK_FEATURES.md"))
	assert.NoError(t, err, "backup keeps the pre-move tree")
}

func TestAPIRefGeneratesReference(t *testing.T) {
	root := seedRepo(t)
	src := filepath.Join(root, "src", "client")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "mod.rs"),
		[]byte("//! Client implementation.\n"), 0o644))

	out, err := run(t, "apiref", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "GENERATED:")

	data, err := os.ReadFile(filepath.Join(root, "docs", "api-reference.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# API Reference")
	assert.Contains(t, string(data), "### [client]")
}

func TestConfigFlagOverridesRepoConfig(t *testing.T) {
	root := seedRepo(t)
	cfgPath := filepath.Join(root, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("repo_url: https://github.com/acme/widget-sdk\n"), 0o644))

	_, err := run(t, "headers", "apply", "--root", root, "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "docs", "getting-started.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://github.com/acme/widget-sdk")
}

func TestBadConfigIsConfigError(t *testing.T) {
	root := seedRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".docsteward.yaml"),
		[]byte("not_a_key: true\n"), 0o644))

	_, err := run(t, "check", "--root", root)
	require.Error(t, err)
	assert.Equal(t, clierr.CodeConfig, clierr.ExitCodeOf(err))
}
