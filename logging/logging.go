// Package logging provides the slog handler used by the stepdiag CLI:
// plain level-colored lines on stderr with attributes flattened to
// key=value pairs, instead of the default structured text output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Handler is a minimal slog.Handler for terminal output.
type Handler struct {
	w     io.Writer
	level slog.Level
	group string
}

// NewHandler returns a Handler writing records at or above level to w.
func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{w: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.group != "" {
		msg = "[" + h.group + "] " + msg
	}

	if r.NumAttrs() > 0 {
		parts := make([]string, 0, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))
			return true
		})
		msg = msg + ": " + strings.Join(parts, " ")
	}

	switch {
	case r.Level >= slog.LevelError:
		msg = colorRed + msg + colorReset
	case r.Level >= slog.LevelWarn:
		msg = colorYellow + msg + colorReset
	}

	_, err := fmt.Fprintln(h.w, msg)
	return err
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{w: h.w, level: h.level, group: name}
}

// NewCLILogger builds a logger on stderr at the given level name.
func NewCLILogger(level string) *slog.Logger {
	return slog.New(NewHandler(os.Stderr, ParseLevel(level)))
}

// SetDefaultCLILogger installs the CLI logger as slog's default.
func SetDefaultCLILogger(level string) {
	slog.SetDefault(NewCLILogger(level))
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info for
// anything unrecognized.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
