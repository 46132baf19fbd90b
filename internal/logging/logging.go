package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global structured logger
var Logger = newLogger(os.Stderr, slog.LevelInfo, false)

// newLogger builds the logger. Text output has no timestamp; JSON output
// keeps it.
func newLogger(w io.Writer, level slog.Level, jsonOutput bool) *slog.Logger {
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Setup configures the logger from the CLI flags. A nil writer logs to stderr.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	Logger = newLogger(w, level, jsonOutput)
}

// Debug logs a debug message
func Debug(msg string, args ...any) { Logger.Debug(msg, args...) }

// Warn logs a warning message
func Warn(msg string, args ...any) { Logger.Warn(msg, args...) }
