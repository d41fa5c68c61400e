package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/internal/declaration"
	"github.com/availgen/availgen/internal/generate"
)

var resolveJSON bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <decls-file>",
	Short: "Resolve declaration availability against the configured targets",
	Long: `Resolve the availability of every declaration in a file.

Declarations sharing a name are merged into one logical API before
resolution. Each API receives one of three verdicts:

  all   reachable on every configured target across its whole window
  some  reachable on at least one target for part of its window
  none  unreachable from the configured targets

The JSON output additionally carries the rendered artifacts: the doc
comment lines, the availability attribute, and the runtime guard.

Examples:
  # Print a verdict table
  availgen resolve decls.yaml

  # Machine-readable output
  availgen resolve decls.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	return runResolveWithWriter(cmd.Context(), os.Stdout, args[0])
}

// runResolveWithWriter allows injecting a writer for testing.
func runResolveWithWriter(ctx context.Context, w io.Writer, path string) error {
	f, err := declaration.Load(path)
	if err != nil {
		return err
	}

	artifacts := generate.Resolve(ctx, f, activeTargets(), GetConfig().CheckFunction)

	if resolveJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(artifacts)
	}
	return outputResolveTabular(w, artifacts)
}

// outputResolveTabular prints one row per logical API.
func outputResolveTabular(w io.Writer, artifacts []generate.Artifact) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sKIND%s\t%sAVAILABILITY%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, a := range artifacts {
		kind := a.Kind
		if kind == "" {
			kind = "-"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s%s%s\n",
			colorGreen, a.Name, colorReset,
			kind,
			verdictColor(a.Availability), a.Availability, colorReset)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d API(s) resolved\n", len(artifacts))
	return nil
}
