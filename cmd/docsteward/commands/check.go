package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prismworks-ai/docsteward/cmd/docsteward/internal/clierr"
	"github.com/prismworks-ai/docsteward/internal/quality"
	"github.com/prismworks-ai/docsteward/internal/render"
	"github.com/prismworks-ai/docsteward/internal/scanner"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run documentation quality checks",
		Long: `Checks the docs tree for duplicated phrasing, hand-written API content
that should be generated, and cross-references missing section anchors.
Exits 1 when issues are found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			corpus, err := quality.LoadCorpus(scanner.New(filepath.Join(root, cfg.DocsDir)))
			if err != nil {
				return clierr.Wrap(clierr.CodeConfig, "loading documents", err)
			}

			checks, err := quality.NewRegistry(cfg.Quality, cfg.GeneratedDocs)
			if err != nil {
				return clierr.Wrap(clierr.CodeConfig, "building checks", err)
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, check := range checks {
				issues := check.Run(corpus)
				if len(issues) == 0 {
					fmt.Fprintf(out, "PASS: %s\n", check.ID())
					continue
				}
				total += len(issues)
				fmt.Fprintf(out, "FAIL: %s (%d issues)\n", check.ID(), len(issues))
				fmt.Fprint(out, render.List(issues))
			}

			if total > 0 {
				return clierr.Newf(clierr.CodeFailure, "documentation quality check failed: %d issues", total)
			}
			fmt.Fprintln(out, "\nDocumentation quality check passed.")
			return nil
		},
	}
}
