// Package cmd holds build metadata injected via ldflags.
package cmd

// Build metadata set at release time. The zero values mark a build made
// outside the release pipeline.
var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the git SHA the binary was built from.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)
