package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/availgen/availgen/internal/errors"
)

var genDocDir string

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Write Markdown reference pages for every availgen command",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := os.MkdirAll(genDocDir, 0755); err != nil {
			return errors.NewSystemError(err, "Check permissions on the documentation directory")
		}
		if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, docFrontmatter, docLink); err != nil {
			return errors.Wrap(err, "rendering reference pages")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reference pages written to %s\n", genDocDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "docs/reference",
		"directory the pages are written into")
	rootCmd.AddCommand(genDocCmd)
}

// docFrontmatter titles each page after the command it documents:
// availgen_gen-doc.md becomes "availgen gen-doc".
func docFrontmatter(path string) string {
	page := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := strings.ReplaceAll(page, "_", " ")
	return fmt.Sprintf("---\ntitle: %q\n---\n\n", title)
}

// docLink keeps cross references relative so the pages read well
// straight out of the repository.
func docLink(page string) string {
	return strings.ToLower(strings.TrimSuffix(page, filepath.Ext(page))) + ".md"
}
