package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version はビルド時に -ldflags "-X github.com/tkc/vibe-todo/internal/cli.Version=..." で埋め込む
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todo %s\n", Version)
	},
}
