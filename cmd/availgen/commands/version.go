package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the availgen build",
	Long:  "Show the release tag, commit and build date of this availgen binary.",
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "availgen version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit %s, built %s with %s\n", cmd.Commit, cmd.Date, runtime.Version())
	},
}
