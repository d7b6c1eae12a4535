// Package logging provides structured logging setup for rms.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup initializes the default slog logger. Humans get colored tint
// output on stderr; setting RMS_LOG_JSON switches to JSON lines for
// scripting. verbose lowers the level to debug, otherwise LOG_LEVEL
// decides (default info).
func Setup(verbose bool) {
	level := levelFromEnv()
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if os.Getenv("RMS_LOG_JSON") != "" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
