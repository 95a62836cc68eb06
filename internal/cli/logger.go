package cli

import (
	"io"
	"log/slog"
)

// newLogger builds the CLI logger. Non-verbose runs log warnings and up;
// --verbose enables debug logging, including driver registration.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
