package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/availgen/availgen/internal/declaration"
	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/target"
	"github.com/availgen/availgen/internal/version"
)

var inspectAPIName string

func init() {
	inspectCmd.Flags().StringVar(&inspectAPIName, "name", "",
		"Inspect a single API by name instead of picking interactively")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <decls-file>",
	Short: "Interactively inspect resolved availability",
	Long: `Pick a declaration with a fuzzy finder and show its full resolution:
the verdict, the merged per-platform milestones, and the rendered doc
comment, availability attribute and runtime guard.

Use --name to skip the picker, for scripts and pipelines.

Examples:
  # Pick interactively
  availgen inspect decls.yaml

  # Jump straight to one API
  availgen inspect decls.yaml --name Open`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	return runInspectWithWriter(os.Stdout, args[0])
}

// runInspectWithWriter allows injecting a writer for testing.
// Interactive selection still talks to the terminal directly.
func runInspectWithWriter(w io.Writer, path string) error {
	f, err := declaration.Load(path)
	if err != nil {
		return err
	}

	targets := activeTargets()
	groups := declaration.Groups(f.Decls)

	if inspectAPIName != "" {
		for _, g := range groups {
			if g.Name == inspectAPIName {
				return writeInspectDetail(w, g, targets)
			}
		}
		return errors.NewUserError(
			errors.Newf("no declaration named %q in %s", inspectAPIName, path),
			"Run: availgen resolve "+path)
	}

	idx, err := fuzzyfinder.Find(
		groups,
		func(i int) string { return groups[i].Name },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			var buf bytes.Buffer
			if err := writeInspectDetail(&buf, groups[i], targets); err != nil {
				return err.Error()
			}
			return buf.String()
		}),
	)
	if err != nil {
		// Backing out of the picker is not an error.
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}
	return writeInspectDetail(w, groups[idx], targets)
}

// writeInspectDetail prints the full resolution for one logical API.
func writeInspectDetail(w io.Writer, g declaration.Group, targets target.Targets) error {
	api := g.Availability(targets)
	verdict := api.Resolved()

	fmt.Fprintf(w, "%s%s%s\n", colorCyan+colorBold, g.Name, colorReset)
	fmt.Fprintf(w, "%sAvailability:%s %s%s%s\n",
		colorBold, colorReset,
		verdictColor(verdict.String()), verdict, colorReset)
	if api.AlwaysDeprecated() {
		fmt.Fprintf(w, "%sDeprecated:%s on every platform\n", colorBold, colorReset)
	}
	if api.AlwaysUnavailable() {
		fmt.Fprintf(w, "%sUnavailable:%s on every platform\n", colorBold, colorReset)
	}

	if names := api.PlatformNames(); len(names) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%sPLATFORM%s\t%sSTATUS%s\t%sINTRODUCED%s\t%sDEPRECATED%s\t%sOBSOLETED%s\n",
			colorBold, colorReset,
			colorBold, colorReset,
			colorBold, colorReset,
			colorBold, colorReset,
			colorBold, colorReset)
		for _, name := range names {
			p, ok := api.Platform(name)
			if !ok {
				continue
			}
			status := colorGreen + "available" + colorReset
			if p.Unavailable {
				status = colorGray + "unavailable" + colorReset
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				name, status,
				milestone(p.Introduced),
				milestone(p.Deprecated),
				milestone(p.Obsoleted))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if doc, ok := api.DocComment(); ok {
		fmt.Fprintf(w, "\n%sDoc comment%s\n", colorBold, colorReset)
		for _, line := range strings.Split(doc, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	if attr, ok := api.AttributeAnnotation(); ok {
		fmt.Fprintf(w, "\n%sAttribute%s\n  %s\n", colorBold, colorReset, attr)
	}
	if check, ok := api.RuntimeCheck(GetConfig().CheckFunction, g.Name); ok {
		fmt.Fprintf(w, "\n%sRuntime check%s\n  %s\n", colorBold, colorReset, check)
	}
	return nil
}

// milestone formats an optional milestone version for table display.
func milestone(v *version.Version) string {
	if v == nil {
		return "-"
	}
	return v.String()
}
