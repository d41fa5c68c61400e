// Package paths resolves where availgen's configuration lives on disk.
//
// The package wraps github.com/adrg/xdg so the config directory lands in
// the platform's conventional location (~/.config on Linux, ~/Library on
// macOS, %LOCALAPPDATA% on Windows).
//
// Configuration is looked up in the working directory before the user-level
// config directory; see [ConfigSearchPaths]. `availgen init` writes to
// [DefaultConfigFile].
package paths
