// Package log builds the slog loggers used for diagnostics.
//
// Diagnostics always go to a separate stream from the report so that
// verbose runs never change report output.
package log

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Verbose lowers the level from
// Warn to Debug.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
