package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prismworks-ai/docsteward/cmd/docsteward/internal/clierr"
	"github.com/prismworks-ai/docsteward/internal/restructure"
)

func newRestructureCommand() *cobra.Command {
	var skipBackup bool

	cmd := &cobra.Command{
		Use:   "restructure",
		Short: "Back up the docs tree and archive superseded documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			docsDir := filepath.Join(root, cfg.DocsDir)
			if info, err := os.Stat(docsDir); err != nil || !info.IsDir() {
				return clierr.Newf(clierr.CodeConfig, "docs directory %s not found", docsDir)
			}

			out := cmd.OutOrStdout()

			if !skipBackup {
				backupDir := filepath.Join(root, cfg.Restructure.BackupDir)
				if err := restructure.Backup(docsDir, backupDir); err != nil {
					return err
				}
				fmt.Fprintf(out, "BACKUP: %s\n", backupDir)
			}

			moved, err := restructure.Archive(root, docsDir, cfg.Restructure.ArchiveFiles, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nArchived %d of %d listed documents\n", moved, len(cfg.Restructure.ArchiveFiles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipBackup, "no-backup", false, "skip the backup copy before archiving")
	return cmd
}
