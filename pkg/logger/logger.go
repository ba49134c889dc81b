// Package logger provides colored slog loggers for terminal output.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// ANSI color codes used per level.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// Options configures NewLogger.
type Options struct {
	// Level is the minimum level to log. Defaults to slog.LevelInfo.
	Level slog.Leveler
	// NoColor disables ANSI colors regardless of the output device.
	NoColor bool
}

// NewDefaultLogger creates a logger writing to stderr at the given level.
// Colors are enabled when stderr is a terminal.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
}

// NewLogger creates a logger with a compact, optionally colored text
// format: "HH:MM:SS LEVEL message key=value ...".
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return slog.New(&handler{
		w:     w,
		level: level,
		color: !opts.NoColor,
	})
}

// ParseLevel maps a config string onto a slog level. Unknown strings fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type handler struct {
	w     io.Writer
	level slog.Leveler
	color bool
	attrs []slog.Attr
	group string

	mu sync.Mutex
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format("15:04:05"))
		b.WriteByte(' ')
	}

	level := r.Level.String()
	if h.color {
		switch {
		case r.Level >= slog.LevelError:
			level = colorRed + level + colorReset
		case r.Level >= slog.LevelWarn:
			level = colorYellow + level + colorReset
		case r.Level < slog.LevelInfo:
			level = colorGray + level + colorReset
		}
	}
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.writeAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&b, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) writeAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	b.WriteByte(' ')
	if h.color {
		b.WriteString(colorGray)
	}
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(attr.Value.String()))
	if h.color {
		b.WriteString(colorReset)
	}
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t\"") {
		return strconv.Quote(s)
	}
	return s
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	next.attrs = append(next.attrs, attrs...)
	return next
}

func (h *handler) WithGroup(name string) slog.Handler {
	next := h.clone()
	if next.group != "" {
		next.group = fmt.Sprintf("%s.%s", next.group, name)
	} else {
		next.group = name
	}
	return next
}

func (h *handler) clone() *handler {
	return &handler{
		w:     h.w,
		level: h.level,
		color: h.color,
		attrs: append([]slog.Attr(nil), h.attrs...),
		group: h.group,
	}
}
