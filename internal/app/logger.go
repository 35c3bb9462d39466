package app

import (
	"io"
	"log/slog"
)

// NewLogger writes to outW at the named level ("debug", "info", "warn" or
// "error"; anything else means info). formatStr "json" selects the JSON
// handler, everything else the text handler.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
