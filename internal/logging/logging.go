package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// Format selects how log records are rendered.
type Format string

const (
	// FormatText renders records for humans on a terminal.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// Config describes the logger New builds.
type Config struct {
	// Level is the minimum level a record needs to be emitted.
	Level slog.Level
	// Format picks the rendering; unknown values fall back to text.
	Format Format
	// Output receives the rendered records, os.Stderr when nil.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(NewHandler(out, opts))
}

// Default returns the logger used when nothing was configured: info-level
// text on stderr.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelInfo, Format: FormatText})
}

// NewDiscard returns a logger that drops everything. Quiet mode uses it.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForTest returns a debug-level logger routed through tb.Log, so records
// surface only on failure or under -v.
func ForTest(tb testing.TB) *slog.Logger {
	tb.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: testWriter{tb},
	})
}

type testWriter struct {
	tb testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	// t.Log appends its own newline.
	w.tb.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
