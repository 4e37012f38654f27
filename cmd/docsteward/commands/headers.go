package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prismworks-ai/docsteward/cmd/docsteward/internal/clierr"
	"github.com/prismworks-ai/docsteward/internal/classify"
	"github.com/prismworks-ai/docsteward/internal/header"
	"github.com/prismworks-ai/docsteward/internal/ledger"
	"github.com/prismworks-ai/docsteward/internal/migrate"
	"github.com/prismworks-ai/docsteward/internal/render"
	"github.com/prismworks-ai/docsteward/internal/scanner"
)

func newHeadersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Manage document metadata headers",
	}

	cmd.AddCommand(newHeadersApplyCommand())
	cmd.AddCommand(newHeadersStatusCommand())
	return cmd
}

func newHeadersApplyCommand() *cobra.Command {
	var docsDirFlag string
	var ledgerFlag string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Bring every document to the current header generation",
		Long: `Scans the docs directory for markdown files, strips any earlier-generation
header, prepends the current one, and records each update in the
processing ledger. Re-running is a no-op for already-current documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			docsDir := cfg.DocsDir
			if docsDirFlag != "" {
				docsDir = docsDirFlag
			}
			ledgerPath := cfg.LedgerPath
			if ledgerFlag != "" {
				ledgerPath = ledgerFlag
			}

			led, err := ledger.Open(filepath.Join(root, ledgerPath))
			if err != nil {
				return err
			}

			renderer := &header.Renderer{
				RepoURL:         cfg.RepoURL,
				ContributingURL: cfg.ContributingURL(),
				Banner: header.Banner{
					Title:           cfg.Banner.Title,
					Description:     cfg.Banner.Description,
					Tagline:         cfg.Banner.Tagline,
					GeneratedSource: cfg.Banner.GeneratedSource,
					GeneratedBy:     cfg.Banner.GeneratedBy,
				},
			}

			m := migrate.New(
				scanner.New(filepath.Join(root, docsDir)),
				classify.New(cfg.ManualDocs, cfg.GeneratedDocs),
				renderer,
				led,
				docsDir,
				cmd.OutOrStdout(),
			)

			if _, err := m.Run(); err != nil {
				// A missing target directory is a setup failure; anything
				// else (ledger save mid-batch) is an ordinary I/O error.
				if errors.Is(err, scanner.ErrRootNotFound) {
					return clierr.Wrap(clierr.CodeConfig, "header migration", err)
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docsDirFlag, "docs-dir", "", "docs directory (default from config)")
	cmd.Flags().StringVar(&ledgerFlag, "ledger", "", "ledger file (default from config)")
	return cmd
}

func newHeadersStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the processing ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			led, err := ledger.Open(filepath.Join(root, cfg.LedgerPath))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if led.Len() == 0 {
				fmt.Fprintln(out, "Ledger is empty; run 'docsteward headers apply' first.")
				return nil
			}

			rows := make([][]string, 0, led.Len())
			for _, p := range led.Paths() {
				e, _ := led.Get(p)
				rows = append(rows, []string{
					p,
					e.Type,
					fmt.Sprintf("v%d", e.HeaderVersion),
					e.LastUpdated.Format("2006-01-02 15:04:05"),
				})
			}

			fmt.Fprint(out, render.Table([]string{"Document", "Type", "Header", "Last Updated"}, rows))
			fmt.Fprintf(out, "\n%d documents recorded\n", led.Len())
			return nil
		},
	}
}
