package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/internal/declaration"
	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/generate"
)

var (
	generateHeader   string
	generateManifest string
	generateFormat   string
)

func init() {
	generateCmd.Flags().StringVar(&generateHeader, "header", "",
		"Write a C header with availability attribute macros to this path")
	generateCmd.Flags().StringVar(&generateManifest, "manifest", "",
		"Write an artifact manifest to this path")
	generateCmd.Flags().StringVar(&generateFormat, "format", "",
		"Manifest format: yaml, json, toml (default: from the file extension)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <decls-file>",
	Short: "Generate availability artifacts from declarations",
	Long: `Generate availability artifacts for every declaration in a file.

The declarations are validated first; generation refuses input that
the check command rejects. Use --header for a C header carrying one
attribute macro per API, and --manifest for the full artifact set as
YAML, JSON or TOML. Both outputs are written atomically.

Examples:
  # Emit a header
  availgen generate decls.yaml --header avail.h

  # Emit a YAML manifest
  availgen generate decls.yaml --manifest avail.yaml

  # Emit a TOML manifest regardless of extension
  availgen generate decls.yaml --manifest avail.out --format toml`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return runGenerateWithWriter(cmd.Context(), os.Stdout, args[0])
}

// runGenerateWithWriter allows injecting a writer for testing.
func runGenerateWithWriter(ctx context.Context, w io.Writer, path string) error {
	if generateHeader == "" && generateManifest == "" {
		return errors.NewUserError(errors.New("no output selected"),
			"Pass --header and/or --manifest")
	}

	f, err := declaration.Load(path)
	if err != nil {
		return err
	}

	targets := activeTargets()
	if result := declaration.Check(f, targets); result.HasErrors() {
		return errors.NewUserError(
			errors.Newf("declarations failed validation: %d error(s)", len(result.Errors())),
			"Run: availgen check "+path)
	}

	artifacts := generate.Resolve(ctx, f, targets, GetConfig().CheckFunction)

	if generateHeader != "" {
		if err := generate.WriteHeaderFile(generateHeader, artifacts); err != nil {
			return errors.NewSystemError(err, "Check permissions on the output directory")
		}
		fmt.Fprintf(w, "Wrote %s\n", generateHeader)
	}
	if generateManifest != "" {
		if err := generate.WriteManifest(generateManifest, generateFormat, artifacts); err != nil {
			if errors.Is(err, errors.ErrUnsupportedFormat) {
				return errors.NewUserError(err, "Use --format yaml, json or toml")
			}
			return errors.NewSystemError(err, "Check permissions on the output directory")
		}
		fmt.Fprintf(w, "Wrote %s\n", generateManifest)
	}
	return nil
}
