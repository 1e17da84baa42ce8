// Package logging wraps log/slog with the process-wide handler setup and the
// component-tagged helpers the rest of the code logs through.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var logger *slog.Logger

func init() {
	Setup()
}

// Setup installs the process logger. LOG_LEVEL selects the level
// (debug|info|warn|error, default info). LOG_FORMAT=json switches to JSON
// output; otherwise a tinted text handler is used, with color only on
// terminals.
func Setup() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func parseLevel(s string) slog.Level {
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

func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// DebugWithComponent logs with a component attribute identifying the
// subsystem.
func DebugWithComponent(component, msg string, args ...any) {
	logger.Debug(msg, append([]any{"component", component}, args...)...)
}

func InfoWithComponent(component, msg string, args ...any) {
	logger.Info(msg, append([]any{"component", component}, args...)...)
}

func WarnWithComponent(component, msg string, args ...any) {
	logger.Warn(msg, append([]any{"component", component}, args...)...)
}

func ErrorWithComponent(component, msg string, args ...any) {
	logger.Error(msg, append([]any{"component", component}, args...)...)
}
