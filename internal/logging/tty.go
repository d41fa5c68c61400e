package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is backed by a terminal. Any writer exposing an
// Fd method, os.File included, is probed.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI color codes are safe to write to w:
// the writer must be a TTY, NO_COLOR must be unset and TERM must not be
// "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
