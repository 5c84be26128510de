package logger

import (
	"log/slog"
	"os"
	"strings"
)

var (
	Logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

func InitLogger() *slog.Logger {
	logLevel.Set(parseLevel(os.Getenv("LOG_LEVEL")))
	config := &slog.HandlerOptions{
		Level: logLevel,
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, config))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized")

	return Logger
}

// SetLevel adjusts the level of the running logger. The logger starts
// before configuration loads; this applies the configured level afterwards.
func SetLevel(level string) {
	logLevel.Set(parseLevel(level))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// SafeError logs through the package logger, tolerating the logger not
// having been initialized yet (e.g. in tests).
func SafeError(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Error(msg, args...)
}

func SafeInfo(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Info(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.Warn(msg, args...)
}
