// internal/util/logger.go
package util

import (
	"log/slog"
	"os"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger with a JSON handler.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// GetLogger returns the global logger, initializing it on first use if the
// application has not done so explicitly.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}
