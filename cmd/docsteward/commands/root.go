// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Docsteward - Docsteward is a standalone documentation maintenance tool for SDK repositories.
It keeps every published document labeled with a current-generation metadata header, checks
prose quality, repairs cross-references, archives superseded pages, and synthesizes the
API reference from source doc comments.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prismworks-ai/docsteward/cmd/docsteward/internal/clierr"
	"github.com/prismworks-ai/docsteward/internal/config"
)

// NewRootCmd constructs the docsteward root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DOCSTEWARD_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "docsteward",
		Short:         "Docsteward - Documentation maintenance for SDK repositories",
		Long:          "Docsteward keeps documentation headers current, checks prose quality, repairs cross-references, archives superseded pages, and generates the API reference.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().String("root", ".", "repository root to operate on")
	cmd.PersistentFlags().String("config", "", "config file (default <root>/"+config.FileName+")")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of docsteward",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "docsteward version %s\n", version)
		},
	})

	cmd.AddCommand(newHeadersCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newFixCommand())
	cmd.AddCommand(newRestructureCommand())
	cmd.AddCommand(newAPIRefCommand())

	return cmd
}

// setup resolves the repository root and configuration for a subcommand.
func setup(cmd *cobra.Command) (root string, cfg *config.Config, err error) {
	root, err = cmd.Flags().GetString("root")
	if err != nil {
		return "", nil, err
	}

	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", nil, err
	}

	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(root)
	}
	if err != nil {
		return "", nil, clierr.Wrap(clierr.CodeConfig, "loading configuration", err)
	}
	return root, cfg, nil
}
