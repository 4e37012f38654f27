package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prismworks-ai/docsteward/internal/reffix"
)

func newFixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Apply configured cross-reference fixes",
		Long: `Applies the replacement table from configuration: known anchor-less
links rewritten to their anchored forms. Already-applied and missing
targets are skipped, so the command is safe to re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			applied, err := reffix.Apply(root, cfg.RefFixes, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nApplied %d of %d configured fixes\n", applied, len(cfg.RefFixes))
			return nil
		},
	}
}
