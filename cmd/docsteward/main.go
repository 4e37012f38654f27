// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/prismworks-ai/docsteward/cmd/docsteward/commands"
	"github.com/prismworks-ai/docsteward/cmd/docsteward/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
