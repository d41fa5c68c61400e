package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// appName is the subdirectory availgen claims under the XDG base directories.
const appName = "availgen"

// ConfigFileName is the file name looked up in each search path.
const ConfigFileName = "config.yaml"

// DefaultDirPerm is applied when EnsureDir is called with a zero mode.
const DefaultDirPerm = 0o700

// EnsureDir creates path and any missing parents. A zero perm falls back to
// DefaultDirPerm. Directories that already exist are left untouched.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the user-level config root, following the XDG spec:
// ~/.config on Linux, ~/Library/Application Support on macOS.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns availgen's user-level configuration directory,
// <ConfigHome>/availgen.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}

// ConfigSearchPaths returns the directories searched for ConfigFileName,
// highest priority first: the working directory, then ConfigDir.
func ConfigSearchPaths() []string {
	return []string{".", ConfigDir()}
}

// DefaultConfigFile returns the path `availgen init` writes,
// <ConfigDir>/config.yaml.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
