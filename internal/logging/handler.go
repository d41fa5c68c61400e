package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor  = color.New(color.FgHiBlack)
	debugColor = color.New(color.FgMagenta)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
	keyColor   = color.New(color.FgCyan)
)

// Handler is a slog.Handler that writes compact, colored lines for a
// person watching a terminal.
// It colorizes output when the writer supports it. Groups are rendered by
// dot-prefixing attribute keys.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
	color  bool
}

// NewHandler builds a terminal handler writing to w at the given level.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &Handler{
		opts:  *opts,
		out:   out,
		mu:    &sync.Mutex{},
		color: SupportsColor(out),
	}
}

// Enabled reports whether records at level pass the handler threshold.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes the record as a single line: time, level, message, then
// key=value attributes.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !r.Time.IsZero() {
		t := r.Time.Format(time.Kitchen)
		if h.color {
			t = timeColor.Sprint(t)
		}
		fmt.Fprintf(h.out, "%s ", t)
	}

	fmt.Fprintf(h.out, "%-5s ", h.levelLabel(r.Level))
	fmt.Fprintf(h.out, "%s", r.Message)

	// Keys from WithAttrs were qualified when they were added.
	for _, a := range h.attrs {
		h.printAttr(a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.printAttr(h.qualify(a.Key), a.Value)
		return true
	})

	fmt.Fprintln(h.out)

	return nil
}

func (h *Handler) levelLabel(level slog.Level) string {
	s := level.String()
	if !h.color {
		return s
	}
	switch {
	case level >= slog.LevelError:
		return errorColor.Sprint(s)
	case level >= slog.LevelWarn:
		return warnColor.Sprint(s)
	case level >= slog.LevelInfo:
		return infoColor.Sprint(s)
	default:
		return debugColor.Sprint(s)
	}
}

func (h *Handler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func (h *Handler) printAttr(key string, v slog.Value) {
	if h.color {
		key = keyColor.Sprint(key)
	}
	fmt.Fprintf(h.out, " %s=%v", key, v.Any())
}

// WithAttrs returns a new Handler carrying the given attributes, their keys
// qualified with the groups open at the time of the call.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &nh
}

// WithGroup returns a new Handler that prefixes subsequent attribute keys
// with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string(nil), h.groups...), name)
	return &nh
}
