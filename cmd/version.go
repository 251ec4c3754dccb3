package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags; source builds report (devel).
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed obrev version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "obrev %s\n", version)
	},
}
