// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Docsteward - Docsteward is a standalone documentation maintenance tool for SDK repositories.
It keeps every published document labeled with a current-generation metadata header, checks
prose quality, repairs cross-references, archives superseded pages, and synthesizes the
API reference from source doc comments.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package config loads the immutable toolkit configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-repository configuration file.
const FileName = ".docsteward.yaml"

// RefFix is one cross-reference replacement: in File, Old becomes New.
type RefFix struct {
	File string `yaml:"file"`
	Old  string `yaml:"old"`
	New  string `yaml:"new"`
}

// Quality holds the quality-checker heuristics.
type Quality struct {
	// DuplicatePhrases are flagged when they appear in more than one document.
	DuplicatePhrases []string `yaml:"duplicate_phrases"`
	// APIPatterns match API-shaped content that belongs in the generated reference.
	APIPatterns []string `yaml:"api_patterns"`
	// AnchorKeywords mark link texts that warrant a #section anchor.
	AnchorKeywords []string `yaml:"anchor_keywords"`
}

// Restructure holds the backup/archive plan.
type Restructure struct {
	BackupDir    string   `yaml:"backup_dir"`
	ArchiveFiles []string `yaml:"archive_files"`
}

// Banner holds the project banner and provenance strings embedded in
// rendered headers.
type Banner struct {
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Tagline         string `yaml:"tagline"`
	GeneratedSource string `yaml:"generated_source"`
	GeneratedBy     string `yaml:"generated_by"`
}

// APIRef holds the doc-comment scraper settings.
type APIRef struct {
	SourceDir   string   `yaml:"source_dir"`
	ModuleFiles []string `yaml:"module_files"`
	DocPrefix   string   `yaml:"doc_prefix"`
	CoreModules []string `yaml:"core_modules"`
	DocsBaseURL string   `yaml:"docs_base_url"`
	OutputFile  string   `yaml:"output_file"`
}

// Config is the full toolkit configuration. It is immutable after Load;
// components receive it (or slices of it) at construction.
type Config struct {
	RepoURL    string `yaml:"repo_url"`
	DocsDir    string `yaml:"docs_dir"`
	LedgerPath string `yaml:"ledger_path"`

	// ManualDocs and GeneratedDocs classify documents by exact file name.
	// Unlisted names default to manual.
	ManualDocs    []string `yaml:"manual_docs"`
	GeneratedDocs []string `yaml:"generated_docs"`

	Banner      Banner      `yaml:"banner"`
	Quality     Quality     `yaml:"quality"`
	RefFixes    []RefFix    `yaml:"ref_fixes"`
	Restructure Restructure `yaml:"restructure"`
	APIRef      APIRef      `yaml:"apiref"`
}

// ContributingURL returns the repository's CONTRIBUTING.md link.
func (c *Config) ContributingURL() string {
	return c.RepoURL + "/blob/main/CONTRIBUTING.md"
}

// Default returns the compiled-in configuration, matching the documentation
// layout of the SDK repository this tool grew up in.
func Default() *Config {
	return &Config{
		RepoURL:    "https://github.com/prismworks-ai/mcp-protocol-sdk",
		DocsDir:    "docs",
		LedgerPath: filepath.Join(".local", "docs-metadata.json"),
		ManualDocs: []string{
			"README.md",
			"getting-started.md",
			"transports.md",
			"error-handling.md",
			"health-monitoring.md",
			"production-readiness.md",
			"SECURITY.md",
		},
		GeneratedDocs: []string{
			"api-reference.md",
		},
		Banner: Banner{
			Title:           "MCP Protocol SDK",
			Description:     "The de facto industry standard for developing MCP clients and servers in Rust",
			Tagline:         "Production-ready • 65%+ test coverage • Full protocol compliance • production-ready error handling",
			GeneratedSource: "Rust source code",
			GeneratedBy:     "scripts/generate-docs.sh",
		},
		Quality: Quality{
			DuplicatePhrases: []string{
				"smart retry logic",
				"circuit breaker protection",
				"exponential backoff",
				"production-ready error handling",
				"health monitoring",
				"transport configuration",
			},
			APIPatterns: []string{
				`pub struct \w+`,
				`pub fn \w+`,
				`pub trait \w+`,
				`pub enum \w+`,
				`impl \w+ for \w+`,
				`fn \w+\([^)]*\) -> \w+`,
			},
			AnchorKeywords: []string{"error", "retry", "circuit", "health", "transport"},
		},
		RefFixes: []RefFix{
			{
				File: "docs/production-readiness.md",
				Old:  "./error-handling.md",
				New:  "./error-handling.md#best-practices",
			},
			{
				File: "docs/getting-started.md",
				Old:  "./transports.md",
				New:  "./transports.md#quick-selection-guide",
			},
			{
				File: "README.md",
				Old:  "[Transport Documentation](./docs/transports.md)",
				New:  "[Transport Documentation](./docs/transports.md#quick-selection-guide)",
			},
		},
		Restructure: Restructure{
			BackupDir: "docs-backup",
			ArchiveFiles: []string{
				"docs/SDK_FEATURES.md",
				"docs/PLUGIN_SYSTEM.md",
				"docs/HTTP_TRANSPORT_FEATURES.md",
			},
		},
		APIRef: APIRef{
			SourceDir:   "src",
			ModuleFiles: []string{"lib.rs", "mod.rs"},
			DocPrefix:   "//!",
			CoreModules: []string{"client", "server", "transport", "protocol", "core"},
			DocsBaseURL: "https://docs.rs/mcp-protocol-sdk",
			OutputFile:  "api-reference.md",
		},
	}
}

// Load returns Default overlaid with the repository's config file, if one
// exists under root.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file, overlaying defaults. Unknown
// keys are rejected.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RepoURL == "" {
		return fmt.Errorf("repo_url must not be empty")
	}
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir must not be empty")
	}
	if c.LedgerPath == "" {
		return fmt.Errorf("ledger_path must not be empty")
	}
	return nil
}
