// Package logging configures the slog output of the formind commands. Growth
// runs narrate model creation at info and every update at trace; the text
// handler writes to the command's stderr so LAI output on stdout stays clean.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is the per-update narration level, one notch below debug so
// --log-level debug does not print a line per step.
const LevelTrace = slog.LevelDebug - 4

var levels = map[string]slog.Level{
	"info":  slog.LevelInfo,
	"debug": slog.LevelDebug,
	"trace": LevelTrace,
}

// ParseLevel returns the level for a --log-level value. Anything other than
// info, debug or trace falls back to info.
func ParseLevel(s string) slog.Level {
	if lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger on w filtered at the named level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: labelTrace,
	}))
}

// slog prints LevelTrace as "DEBUG-4".
func labelTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}

// Discard is the logger a model uses when no WithLogger option is given.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
