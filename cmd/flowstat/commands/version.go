package commands

import (
	"fmt"

	"github.com/livp123/flowstat/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of flowstat`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flowstat %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
