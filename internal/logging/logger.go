// Package logging configures the structured logger shared by the waymark
// CLI and adapters.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing text records to w at the given level. Keys
// are normalized so "error" always appears as "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// Default returns the standard CLI logger: Stderr, so log records never mix
// with rendered walkthrough output on Stdout.
func Default(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return New(os.Stderr, level)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
