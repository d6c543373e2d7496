package app

import (
	"fmt"
	"io"
	"log/slog"
)

// Log formats accepted by newLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// newLogger creates an isolated slog.Logger for one App. It does not touch
// the global logger. Empty level and format select info and text; anything
// else that slog does not recognize is an error.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case "", LogFormatText:
		return slog.New(slog.NewTextHandler(outW, handlerOpts)), nil
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(outW, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", formatStr)
	}
}
