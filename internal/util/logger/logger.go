package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	loggerInstance *slog.Logger
	once           sync.Once
)

// GetLogger returns the process-wide structured logger. ENV_MODE is read
// directly from the environment because config itself logs through here.
func GetLogger() *slog.Logger {
	once.Do(func() {
		options := &slog.HandlerOptions{Level: slog.LevelInfo}

		var handler slog.Handler
		if os.Getenv("ENV_MODE") == "production" {
			handler = slog.NewJSONHandler(os.Stdout, options)
		} else {
			options.Level = slog.LevelDebug
			handler = slog.NewTextHandler(os.Stdout, options)
		}

		loggerInstance = slog.New(handler)
	})

	return loggerInstance
}
