// ABOUTME: This file provides process-wide slog setup for the analyzer
// ABOUTME: Level and output format are controlled by LOG_LEVEL and LOG_FORMAT
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide logger. Init replaces it; the package default
// keeps early code and tests from tripping over a nil logger.
var Logger *slog.Logger

func init() {
	if Logger == nil {
		Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	}
}

// Init configures the global logger from the environment and returns it.
// LOG_FORMAT=json switches to the JSON handler used in scheduled runs;
// anything else keeps the text handler.
func Init() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, options)
	} else {
		handler = slog.NewTextHandler(os.Stdout, options)
	}

	Logger = slog.New(handler).With("service", "rss-analyzer")
	slog.SetDefault(Logger)

	return Logger
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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
