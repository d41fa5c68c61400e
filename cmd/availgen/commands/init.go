package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/availgen/availgen/internal/config"
	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/paths"
	"github.com/availgen/availgen/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "replace an existing config file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Write a starter config.yaml with the default deployment targets.

The file lands in the XDG config directory and names the macos and
ios platforms with windows open on both ends. Edit it to pin minimum
and maximum deployment versions per platform, spelled as structured
version literals:

  targets:
    ios:
      min: {major: 12}
      max: {major: 15, minor: 4}`,
	Example: `  # Create the config file
  availgen init

  # Overwrite an existing one
  availgen init --force

  See Also: availgen targets`,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitAt(os.Stdout, paths.DefaultConfigFile())
}

// runInitAt writes the starter configuration to an explicit path.
// An existing file is kept unless --force was given.
func runInitAt(w io.Writer, configPath string) error {
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating the config directory"),
			"Check permissions on the config directory")
	}

	cfg := config.Config{
		Version:       config.SupportedVersion,
		CheckFunction: config.DefaultCheckFunction,
		Targets:       config.DefaultTargets(),
	}
	if err := fileutil.AtomicWriteYAML(configPath, &cfg); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing the starter config"),
			"Check permissions on the config directory")
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}
