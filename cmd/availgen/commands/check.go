package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/internal/declaration"
	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/validator"
	"github.com/availgen/availgen/pkg/fileutil"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <decls-file>",
	Short: "Validate a declarations file",
	Long: `Validate a declarations file without resolving it.

Reports nameless declarations, records for platforms no configured
target covers, and milestone orderings that can never be satisfied.
Warnings do not fail the run.

Exit codes:
  0 - Declarations are valid (warnings allowed)
  1 - Validation found errors`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	return runCheckWithWriter(os.Stdout, args[0])
}

// runCheckWithWriter allows injecting a writer for testing. The file is
// decoded directly so that an empty declarations list reaches the linter
// as a reportable issue instead of failing the load.
func runCheckWithWriter(w io.Writer, path string) error {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return errors.Wrapf(err, "reading %q", path)
	}
	f, err := declaration.Decode(data, filepath.Ext(path))
	if err != nil {
		return errors.Wrapf(err, "loading %q", path)
	}

	result := declaration.Check(f, activeTargets())

	format := validator.FormatText
	if checkJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(w, format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewExitError(
			errors.Newf("%d validation error(s)", len(result.Errors())),
			errors.ExitUser)
	}
	return nil
}
