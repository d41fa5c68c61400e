package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/version"
)

func init() {
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets [platform]",
	Short: "Print the configured deployment targets",
	Long: `Print the deployment windows resolution runs against.

Each row is one platform with the minimum and maximum version the
build deploys to. An open bound is shown as "any". Platforms whose
window is open on both ends are part of the vocabulary but impose
no constraint on resolution.

With a platform argument, print that platform's window alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTargets,
}

func runTargets(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return runTargetsWithWriter(os.Stdout, name)
}

// runTargetsWithWriter allows injecting a writer for testing.
func runTargetsWithWriter(w io.Writer, name string) error {
	targets := activeTargets()

	if name != "" {
		win, ok := targets[name]
		if !ok {
			return errors.NewUserError(errors.Wrapf(errors.ErrUnknownPlatform, "%q", name),
				"Run availgen targets with no argument to list the configured platforms")
		}
		fmt.Fprintf(w, "%s: %s to %s\n", name, windowBound(win.Min), windowBound(win.Max))
		return nil
	}

	if len(targets) == 0 {
		fmt.Fprintln(w, "No targets configured")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sPLATFORM%s\t%sMIN%s\t%sMAX%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)
	for _, name := range targets.Platforms() {
		win := targets[name]
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\n",
			colorGreen, name, colorReset,
			windowBound(win.Min), windowBound(win.Max))
	}
	return tw.Flush()
}

// windowBound formats an optional window bound for display.
func windowBound(v *version.Version) string {
	if v == nil {
		return "any"
	}
	return v.String()
}
