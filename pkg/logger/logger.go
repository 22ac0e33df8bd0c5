package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the global logger. Production gets JSON output,
// everything else gets the text handler for readability.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize tolerates callers passing a bare error or value instead of
// key-value pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	return append([]any{"detail"}, args...)
}
